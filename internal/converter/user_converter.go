package converter

import (
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// TenantToResponse converts a Tenant entity to its response DTO
func TenantToResponse(tenant *entity.Tenant) *dto.TenantResponse {
	if tenant == nil {
		return nil
	}

	return &dto.TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Plan:      tenant.Plan,
		CreatedAt: tenant.CreatedAt,
	}
}
