package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/uploads"
)

// AuthHandler handles authentication and profile requests
type AuthHandler struct {
	userService  services.UserServicer
	tokens       *middleware.TokenManager
	uploads      *uploads.Store
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokens *middleware.TokenManager, uploadStore *uploads.Store, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, uploads: uploadStore, auditService: auditService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	FullName        string  `json:"fullName" binding:"required,not_blank,max=100"`
	Email           string  `json:"email" binding:"required,email,max=255"`
	Password        string  `json:"password" binding:"required,min=8,max=128"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,max=2048"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the profile update payload. Omitted fields
// are left unchanged; an empty profileImageUrl removes the photo.
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName" binding:"omitempty,max=100"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,max=2048"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	ID    string       `json:"id"`
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ProfileResponse is returned after a profile update.
type ProfileResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// UploadResponse carries the public URL of an uploaded image.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with name, email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.FullName, req.Email, req.Password, req.ProfileImageURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(c.Request.Context(), user.ID, services.AuditRegisterUser, "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, AuthResponse{ID: user.ID, User: user, Token: token})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input or credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.AttemptLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{ID: user.ID, User: user, Token: token})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /auth/getUser [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the name and/or photo of the authenticated user
// @Summary     Update user profile
// @Description Update the name and profile photo URL. Omitted fields are kept.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} ProfileResponse "Profile updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/update-profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	update := services.ProfileUpdate{ProfilePhoto: req.ProfileImageURL}
	if req.FullName != nil {
		update.Name = *req.FullName
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.FullName != nil {
		changes["fullName"] = user.Name
	}
	if req.ProfileImageURL != nil {
		changes["profileImageUrl"] = user.ProfilePhoto
	}
	h.auditService.Log(c.Request.Context(), userID, services.AuditUpdateProfile, "user", userID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, ProfileResponse{Message: "Profile updated successfully", User: user})
}

// UploadImage stores a profile image and returns its public URL
// @Summary     Upload profile image
// @Description Upload a JPEG or PNG image (multipart field "image")
// @Tags        auth
// @Accept      mpfd
// @Produce     json
// @Param       image formData file true "JPEG or PNG image"
// @Success     200 {object} UploadResponse "Image stored"
// @Failure     400 {object} ErrorResponse "Missing, oversized or unsupported file"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/upload-image [post]
func (h *AuthHandler) UploadImage(c *gin.Context) {
	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploads.MaxBytes()+1<<20)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respondWithError(c, apperrors.ErrFileTooLarge)
		case errors.Is(err, http.ErrMissingFile):
			respondWithError(c, apperrors.ErrNoFileUploaded)
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid multipart form"))
		}
		return
	}
	if fileHeader.Size > h.uploads.MaxBytes() {
		respondWithError(c, apperrors.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	upload, err := h.uploads.SaveImage(fileHeader.Filename, file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{ImageURL: upload.URL})
}
