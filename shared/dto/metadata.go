package dto

import (
	"hotelier/shared/constant"
	"hotelier/shared/model"
	"hotelier/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"updatedAt"`
	CreatedBy  string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"updatedBy,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
