package usecase

import (
	"github.com/sunstone-app/sunstone-api/internal/application/autotag"
	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

func toClientResponse(c *entity.Client, tags []*entity.Tag) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	out := &dto.ClientResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		LastVisitAt: c.LastVisitAt,
		CreatedAt:   c.CreatedAt,
		Tags:        toTagResponses(tags),
	}
	if c.Birthday != nil {
		out.Birthday = c.Birthday.Format(dto.BirthdayLayout)
	}
	return out
}

func toTagResponse(t *entity.Tag) dto.TagResponse {
	return dto.TagResponse{
		ID:            t.ID,
		Name:          t.Name,
		Color:         t.Color,
		AutoApply:     t.AutoApply,
		AutoApplyRule: t.AutoApplyRule,
	}
}

func toTagResponses(list []*entity.Tag) []dto.TagResponse {
	if len(list) == 0 {
		return nil
	}
	out := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTagResponse(t))
	}
	return out
}

func toAutoTagResult(o *autotag.Outcome) dto.AutoTagResult {
	res := dto.AutoTagResult{
		Assigned: []dto.TagResponse{},
		Removed:  []dto.TagResponse{},
	}
	if o == nil {
		return res
	}
	res.CompletedSales = o.CompletedSales
	res.VisitStamped = o.VisitStamped
	for _, t := range o.Assigned {
		res.Assigned = append(res.Assigned, toTagResponse(t))
	}
	for _, t := range o.Removed {
		res.Removed = append(res.Removed, toTagResponse(t))
	}
	return res
}

func toTenantResponse(t *entity.Tenant) dto.TenantResponse {
	return dto.TenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		SubscriptionStatus: t.SubscriptionStatus,
		SubscriptionTier:   t.SubscriptionTier,
		TrialEndsAt:        t.TrialEndsAt,
		IsSuspended:        t.IsSuspended,
		CreatedAt:          t.CreatedAt,
	}
}
