package models

import "github.com/golang-jwt/jwt/v5"

// OperatorRole is the app_metadata.role value granting operator access
const OperatorRole = "operator"

// SupabaseClaims represents the JWT claims structure from Supabase Auth.
// See: https://supabase.com/docs/guides/auth/jwts
type SupabaseClaims struct {
	jwt.RegisteredClaims                          // sub, iss, aud, exp, iat
	Email                string                   `json:"email"`
	Phone                string                   `json:"phone"`
	AppMetadata          map[string]interface{}   `json:"app_metadata"`
	UserMetadata         map[string]interface{}   `json:"user_metadata"`
	Role                 string                   `json:"role"` // "authenticated" or "anon"
	AAL                  string                   `json:"aal"`
	AMR                  []map[string]interface{} `json:"amr"`
	SessionID            string                   `json:"session_id"`
	IsAnonymous          bool                     `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
// For tenants this is also their tenant id.
func (c *SupabaseClaims) GetUserID() string {
	return c.Subject
}

// IsOperator reports whether the property-management app granted the operator role.
// app_metadata is only writable with the service key, so users cannot self-promote.
func (c *SupabaseClaims) IsOperator() bool {
	role, _ := c.AppMetadata["role"].(string)
	return role == OperatorRole
}
