package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pinshop/pinshop-api/initializers"
	"github.com/pinshop/pinshop-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgInvalidCredentials    = "identifiants invalides"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgLoginSuccess          = "Connexion réussie"
	msgLogoutSuccess         = "Déconnexion réussie"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message, "details": ""})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"username":  user.Username,
		"is_seller": user.IsSeller(),
		"is_client": user.IsClient(),
		"is_staff":  user.IsStaff,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func requestClaims(ctx *gin.Context) (jwt.MapClaims, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	return claims, ok
}

func isStaff(ctx *gin.Context) bool {
	claims, ok := requestClaims(ctx)
	if !ok {
		return false
	}
	staff, ok := claims["is_staff"].(bool)
	return ok && staff
}

func currentUserID(ctx *gin.Context) uint {
	claims, ok := requestClaims(ctx)
	if !ok {
		return 0
	}
	// JSON numbers decode as float64 in MapClaims.
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0
	}
	return uint(id)
}

func checkUserExists(email, username string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("email = ? OR username = ?", email, username).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func findUserByIdentifier(identifier string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ? OR username = ?", identifier, identifier).First(&user)
	return user, result.Error
}

func createUser(tx *gorm.DB, input models.UserInput, roles models.RoleSet) (models.User, error) {
	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:    input.Email,
		Username: input.Username,
		Password: hashedPassword,
		Roles:    roles,
	}
	if err := tx.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login authenticates by email or username and returns a signed token.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByIdentifier(loginData.Identifier)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgLoginSuccess,
		"token":   tokenString,
		"user":    user.View(),
	})
}

// Logout acknowledges the logout; tokens are stateless so the client simply
// discards its copy.
func Logout(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLogoutSuccess})
}

// RegisterSeller creates a user account with the seller capability and its
// seller profile in one transaction.
func RegisterSeller(ctx *gin.Context) {
	var input models.SellerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	exists, err := checkUserExists(input.User.Email, input.User.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	var seller models.Seller
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		user, err := createUser(tx, input.User, models.Roles(true, false))
		if err != nil {
			return err
		}

		seller = models.Seller{
			UserID:   user.ID,
			User:     &user,
			Name:     input.Name,
			Phone:    input.Phone,
			Status:   models.StatusUnverified,
			Remarks:  input.Remarks,
			Location: input.Location,
		}
		return tx.Create(&seller).Error
	})
	if err != nil {
		log.Println("Seller registration error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de l'inscription du vendeur", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"id":           seller.ID,
		"user":         seller.User.View(),
		"nom":          seller.Name,
		"numero":       seller.Phone,
		"status":       seller.Status,
		"start":        seller.Start,
		"avis":         seller.Remarks,
		"localisation": seller.Location,
	})
}

// RegisterClient creates a user account with the client capability and its
// client profile in one transaction.
func RegisterClient(ctx *gin.Context) {
	var input models.ClientInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	exists, err := checkUserExists(input.User.Email, input.User.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	var client models.Client
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		user, err := createUser(tx, input.User, models.Roles(false, true))
		if err != nil {
			return err
		}

		client = models.Client{
			UserID:   user.ID,
			User:     &user,
			Relation: input.Relation,
		}
		return tx.Create(&client).Error
	})
	if err != nil {
		log.Println("Client registration error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de l'inscription du client", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"id":       client.ID,
		"user":     client.User.View(),
		"relation": client.Relation,
	})
}
