package service

import (
	"fmt"

	"idscan/internal/domain"
)

// NormalizeIDDocument flattens the first document of an analysis result into
// the well-known identity fields plus a map of every recognized field.
func NormalizeIDDocument(result *domain.AnalyzeResult) (*domain.NormalizedResult, error) {
	if result == nil || len(result.Documents) == 0 {
		return nil, domain.ErrNoDocumentExtracted
	}
	doc := result.Documents[0]

	resolve := func(name string) any {
		f, ok := doc.Fields[name]
		if !ok {
			return nil
		}
		v, _ := f.Resolve()
		return v
	}

	firstName := resolve(domain.FieldFirstName)
	lastName := resolve(domain.FieldLastName)

	documentNumber := resolve(domain.FieldDocumentNumber)
	if !domain.Truthy(documentNumber) {
		documentNumber = resolve(domain.FieldIdentityNumber)
	}

	fullName := resolve(domain.FieldFullName)
	if !domain.Truthy(fullName) {
		fullName = nil
		if domain.Truthy(firstName) && domain.Truthy(lastName) {
			fullName = fmt.Sprintf("%v %v", firstName, lastName)
		}
	}

	allFields := make(map[string]any, len(doc.Fields))
	for name, f := range doc.Fields {
		if v, ok := f.Resolve(); ok {
			allFields[name] = v
		}
	}

	return &domain.NormalizedResult{
		DocType:          doc.DocType,
		FullName:         fullName,
		FirstName:        firstName,
		LastName:         lastName,
		DocumentNumber:   documentNumber,
		DateOfBirth:      resolve(domain.FieldDateOfBirth),
		Nationality:      resolve(domain.FieldNationality),
		DateOfExpiration: resolve(domain.FieldDateOfExpiration),
		AllFields:        allFields,
	}, nil
}
