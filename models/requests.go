package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"omitempty,gte=0,lte=120"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
	Age  int    `json:"age" binding:"omitempty,gte=0,lte=120"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,min=6"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type RateVideoRequest struct {
	// Pointer so an absent rating is distinguishable from an explicit 0;
	// range is validated by the service before any storage access.
	Rating *int `json:"rating" binding:"required"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type FavoriteRequest struct {
	VideoRef string `json:"videoRef" binding:"required"`
}

type LikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

type RatingResponse struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	UserRating    *int    `json:"userRating"`
	Created       bool    `json:"-"`
}

type CommentResponse struct {
	Comment       *Comment `json:"comment,omitempty"`
	TotalComments int      `json:"totalComments"`
}

type CommentListResponse struct {
	Comments      []Comment `json:"comments"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	TotalComments int       `json:"totalComments"`
}

type VideoListResponse struct {
	Videos      []Video `json:"videos"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalVideos int64   `json:"totalVideos"`
}
