package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"staybook-backend/models"
	"staybook-backend/services"
	"staybook-backend/utils"
)

const sessionUserKey = "user_id"

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// RegisterPayload binds from JSON or multipart form; the optional photo file
// is read separately from the multipart body.
type RegisterPayload struct {
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Country   string `json:"country" form:"country"`
	City      string `json:"city" form:"city"`
}

type LoginPayload struct {
	Email      string                   `json:"email"`
	Password   string                   `json:"password"`
	GoogleData *services.GoogleIdentity `json:"google_data"`
}

func publicUserJSON(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"username":   u.Username,
		"country":    u.Country,
		"city":       u.City,
	}
}

func establishSession(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	return session.Save()
}

// Register (POST /api/auth/register) creates the account and logs it in.
func (ctrl *UserController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ctrl.UserSvc.Register(c.Request.Context(), services.RegisterInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Country:   payload.Country,
		City:      payload.City,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Photo is attached only once the account exists, so a rejected
	// registration leaves nothing on disk.
	if file, ffErr := c.FormFile("photo"); ffErr == nil && file != nil {
		path, saveErr := utils.SaveUploadedPhoto(file, "user_photos")
		if saveErr == nil {
			saveErr = ctrl.UserSvc.SetPhoto(c.Request.Context(), user, path)
		}
		if saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to store user photo")
			utils.JSONError(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	if err := establishSession(c, user.ID); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    publicUserJSON(user),
		"message": "registration successful",
	})
}

// Login (POST /api/auth/login) handles both credential shapes: a Google
// identity assertion when google_data is present, email/password otherwise.
func (ctrl *UserController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var (
		user    *models.User
		err     error
		message string
	)
	if payload.GoogleData != nil {
		user, err = ctrl.UserSvc.LoginWithGoogle(c.Request.Context(), *payload.GoogleData)
		message = "google login successful"
	} else {
		user, err = ctrl.UserSvc.LoginWithPassword(c.Request.Context(), payload.Email, payload.Password)
		message = "login successful"
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := establishSession(c, user.ID); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    publicUserJSON(user),
		"message": message,
	})
}

// Logout (POST /api/auth/logout) destroys the session; it always succeeds.
func (ctrl *UserController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	utils.JSONMessage(c, http.StatusOK, "logged out successfully")
}

// CurrentUser (GET /api/auth/current_user) returns the session's user, or a
// null user with 200 when unauthenticated. A stale session pointing at a
// deleted user also reads as unauthenticated.
func (ctrl *UserController) CurrentUser(c *gin.Context) {
	session := sessions.Default(c)
	raw := session.Get(sessionUserKey)
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := ctrl.UserSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": publicUserJSON(user)})
}

// sessionUserID extracts the logged-in user id, zero when absent.
func sessionUserID(c *gin.Context) uint {
	if id, ok := sessions.Default(c).Get(sessionUserKey).(uint); ok {
		return id
	}
	return 0
}
