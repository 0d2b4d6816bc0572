package response

import "github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"

type Events struct {
	Events []domain.Event `json:"events"`
}

type EventCreated struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID uint   `json:"eventId"`
}

type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Registered struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID uint   `json:"registrationId"`
}
