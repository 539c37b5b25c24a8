package dto

import "github.com/saransh1220/storefront-vocabulary/internal/domain"

type ParseRequest struct {
	Value *string `json:"value"`
}

type ParseResponse struct {
	Enumeration string `json:"enumeration"`
	Value       string `json:"value"`
}

type VocabularyResponse struct {
	Enumerations []domain.Enumeration `json:"enumerations"`
}
