package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService emite y valida tokens de sesión para la identidad única de
// administrador.
type AuthService struct {
	secret        []byte
	adminUsername string
	adminPassword string
}

// SessionClaims lleva únicamente la identidad del administrador. El token no
// tiene claim de expiración.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

func NewAuthService(secret, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		secret:        []byte(secret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login compara el par recibido contra la credencial configurada. Ambos
// campos se comparan en tiempo constante y un fallo en cualquiera produce el
// mismo error.
func (s *AuthService) Login(username, password string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrInvalidToken
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))
	if userOK&passOK != 1 {
		return "", ErrInvalidCredentials
	}
	return s.IssueToken(username)
}

// IssueToken firma un token HS256 que liga el username dado.
func (s *AuthService) IssueToken(username string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrInvalidToken
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{Username: username})
	return token.SignedString(s.secret)
}

// VerifyToken valida firma y estructura. Cualquier fallo de verificación,
// incluido un token imposible de parsear, se reporta como ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (SessionClaims, error) {
	if len(s.secret) == 0 {
		return SessionClaims{}, ErrInvalidToken
	}
	if strings.TrimSpace(tokenString) == "" {
		return SessionClaims{}, ErrInvalidToken
	}

	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Username) == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword genera un hash bcrypt para una contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifica una contraseña contra un hash bcrypt.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
