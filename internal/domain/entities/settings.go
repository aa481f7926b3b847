package entities

// SocialMediaLinks maps platform name to profile URL
type SocialMediaLinks struct {
	Links map[string]string `json:"links"`
}

// UpdateSocialMediaInput represents the admin OTP-gated link update
type UpdateSocialMediaInput struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
}
