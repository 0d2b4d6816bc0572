package response

import "github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"

type UserAuth struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

type OrganiserAuth struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Token     string           `json:"token"`
	Organiser domain.Organiser `json:"organiser"`
}
