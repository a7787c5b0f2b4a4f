package dto

type WelcomeResponse struct {
	Message string `json:"message"`
}
