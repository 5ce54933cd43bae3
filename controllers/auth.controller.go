package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-backend/helpers"
	"storefront-backend/middlewares"
	"storefront-backend/models"
	"storefront-backend/repository"
)

// Register menangani registrasi user baru.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": helpers.ValidationMessage(err)})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := ctrl.Users.GetByEmail(ctx, email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Already registered, please login"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error in registration", err)
		return
	}

	hashed, err := helpers.HashPassword(req.Password)
	if err != nil {
		serverError(c, "Failed to hash password", err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		Phone:    req.Phone,
		Address:  req.Address,
		Answer:   req.Answer,
		Role:     models.RoleUser,
	}
	if err := ctrl.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Already registered, please login"})
			return
		}
		serverError(c, "Error in registration", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully", "user": user})
}

// Login menangani proses login dan penerbitan token.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	user, err := ctrl.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email is not registered"})
			return
		}
		serverError(c, "Error in login", err)
		return
	}

	if !helpers.ComparePassword(user.Password, req.Password) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	token, err := ctrl.Tokens.CreateToken(user.ID.Hex(), ctrl.TokenTTL)
	if err != nil {
		serverError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successfully", "user": user, "token": token})
}

// ForgotPassword mengganti password lewat jawaban pertanyaan keamanan.
func (ctrl *Controller) ForgotPassword(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": helpers.ValidationMessage(err)})
		return
	}

	user, err := ctrl.Users.GetByEmailAndAnswer(ctx, strings.ToLower(strings.TrimSpace(req.Email)), req.Answer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Wrong email or answer"})
			return
		}
		serverError(c, "Something went wrong", err)
		return
	}

	hashed, err := helpers.HashPassword(req.NewPassword)
	if err != nil {
		serverError(c, "Failed to hash password", err)
		return
	}
	if err := ctrl.Users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		serverError(c, "Something went wrong", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}

// UpdateProfile menangani update profil user yang sedang login.
func (ctrl *Controller) UpdateProfile(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": helpers.ValidationMessage(err)})
		return
	}
	if req.Password != "" && len(req.Password) < helpers.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required and 6 character long"})
		return
	}

	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}
	user, err := ctrl.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		serverError(c, "Error while updating profile", err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Password != "" {
		hashed, err := helpers.HashPassword(req.Password)
		if err != nil {
			serverError(c, "Failed to hash password", err)
			return
		}
		user.Password = hashed
	}

	updated, err := ctrl.Users.UpdateProfile(ctx, user)
	if err != nil {
		serverError(c, "Error while updating profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "updatedUser": updated})
}

// AuthProbe dipakai oleh user-auth dan admin-auth; middleware sudah melakukan pemeriksaan.
func (ctrl *Controller) AuthProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetUsers menangani daftar semua user (admin).
func (ctrl *Controller) GetUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := ctrl.Users.GetAll(ctx)
	if err != nil {
		serverError(c, "Error while getting users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
