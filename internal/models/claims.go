package models

import "github.com/golang-jwt/jwt"

const (
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
