package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idscan/internal/domain"
	"idscan/internal/service"
)

func str(s string) domain.FieldValue { return domain.FieldValue{ValueString: &s} }

func date(s string) domain.FieldValue { return domain.FieldValue{ValueDate: &s} }

func resultWith(fields map[string]domain.FieldValue) *domain.AnalyzeResult {
	return &domain.AnalyzeResult{
		ModelID: "prebuilt-idDocument",
		Documents: []domain.ExtractedDocument{
			{DocType: "idDocument.nationalIdentityCard", Fields: fields},
		},
	}
}

func TestNormalizeIDDocument_NationalIDCard(t *testing.T) {
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"FirstName":      str("Ana"),
		"LastName":       str("Gomez"),
		"DocumentNumber": str("X123"),
		"DateOfBirth":    date("1990-01-01"),
	}))
	require.NoError(t, err)

	assert.Equal(t, "idDocument.nationalIdentityCard", res.DocType)
	assert.Equal(t, "Ana Gomez", res.FullName)
	assert.Equal(t, "Ana", res.FirstName)
	assert.Equal(t, "Gomez", res.LastName)
	assert.Equal(t, "X123", res.DocumentNumber)
	assert.Equal(t, "1990-01-01", res.DateOfBirth)
	assert.Nil(t, res.Nationality)
	assert.Nil(t, res.DateOfExpiration)
	assert.Equal(t, map[string]any{
		"FirstName":      "Ana",
		"LastName":       "Gomez",
		"DocumentNumber": "X123",
		"DateOfBirth":    "1990-01-01",
	}, res.AllFields)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"docType":"idDocument.nationalIdentityCard",
		"fullName":"Ana Gomez","firstName":"Ana","lastName":"Gomez",
		"documentNumber":"X123","dateOfBirth":"1990-01-01",
		"allFields":{"FirstName":"Ana","LastName":"Gomez","DocumentNumber":"X123","DateOfBirth":"1990-01-01"}
	}`, string(body))
}

func TestNormalizeIDDocument_FullNameFieldWins(t *testing.T) {
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"FullName":  str("ANA MARIA GOMEZ"),
		"FirstName": str("Ana"),
		"LastName":  str("Gomez"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "ANA MARIA GOMEZ", res.FullName)
}

func TestNormalizeIDDocument_FullNameNeedsBothParts(t *testing.T) {
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"FirstName": str("Ana"),
	}))
	require.NoError(t, err)
	assert.Nil(t, res.FullName)
	assert.Equal(t, "Ana", res.FirstName)
	assert.Nil(t, res.LastName)
}

func TestNormalizeIDDocument_EmptyFullNameFallsBack(t *testing.T) {
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"FullName":  str(""),
		"FirstName": str("Ana"),
		"LastName":  str("Gomez"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "Ana Gomez", res.FullName)
	assert.Equal(t, "", res.AllFields["FullName"])
}

func TestNormalizeIDDocument_IdentityNumberFallback(t *testing.T) {
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"IdentityNumber": str("ID-987"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "ID-987", res.DocumentNumber)
}

func TestNormalizeIDDocument_DocumentNumberPreferred(t *testing.T) {
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"DocumentNumber": str("P-1"),
		"IdentityNumber": str("ID-987"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "P-1", res.DocumentNumber)
}

func TestNormalizeIDDocument_CountryRegionAndUnresolvedFields(t *testing.T) {
	country := "ESP"
	res, err := service.NormalizeIDDocument(resultWith(map[string]domain.FieldValue{
		"Nationality": {Type: "countryRegion", ValueCountryRegion: &country},
		"Signature":   {Type: "signature", Content: ""},
	}))
	require.NoError(t, err)
	assert.Equal(t, "ESP", res.Nationality)
	assert.Equal(t, map[string]any{"Nationality": "ESP"}, res.AllFields)
}

func TestNormalizeIDDocument_UsesFirstDocument(t *testing.T) {
	a, b := "A", "B"
	res, err := service.NormalizeIDDocument(&domain.AnalyzeResult{
		Documents: []domain.ExtractedDocument{
			{DocType: "idDocument.passport", Fields: map[string]domain.FieldValue{"FirstName": {ValueString: &a}}},
			{DocType: "idDocument.driverLicense", Fields: map[string]domain.FieldValue{"FirstName": {ValueString: &b}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "idDocument.passport", res.DocType)
	assert.Equal(t, "A", res.FirstName)
}

func TestNormalizeIDDocument_NoDocuments(t *testing.T) {
	_, err := service.NormalizeIDDocument(&domain.AnalyzeResult{})
	assert.ErrorIs(t, err, domain.ErrNoDocumentExtracted)

	_, err = service.NormalizeIDDocument(nil)
	assert.ErrorIs(t, err, domain.ErrNoDocumentExtracted)
}

func TestNormalizeIDDocument_NoFields(t *testing.T) {
	res, err := service.NormalizeIDDocument(&domain.AnalyzeResult{
		Documents: []domain.ExtractedDocument{{DocType: "idDocument"}},
	})
	require.NoError(t, err)
	assert.NotNil(t, res.AllFields)
	assert.Empty(t, res.AllFields)
}
