package converter

import (
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The stored
// credential never leaves through this path.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:                        user.ID,
		FullName:                  user.FullName,
		Email:                     user.Email,
		Role:                      user.Role,
		Specialty:                 user.Specialty,
		MedicalRegistrationNumber: user.MedicalRegistrationNumber,
		PhoneNumber:               user.PhoneNumber,
		ConsultationAddress:       user.ConsultationAddress,
		CreatedAt:                 user.CreatedAt,
		UpdatedAt:                 user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
