package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mountmix/config"
	"mountmix/infras/jwt"
)

func TestJWT_IssueAndValidate(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "mountmix-api"

	svc := jwt.New(cfg)

	token, err := svc.IssueAdminToken(1, "admin@mountainmixology.com", "Site Administrator")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@mountainmixology.com", claims.Email)
	assert.Equal(t, "Site Administrator", claims.Name)
	assert.Equal(t, "mountmix-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "token must carry a unique jti")

	adminID, err := claims.AdminID()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), adminID)
}

func TestJWT_ValidateToken_Tampered(t *testing.T) {
	svc := jwt.New(&config.Config{})

	token, err := svc.IssueAdminToken(1, "admin@mountainmixology.com", "Site Administrator")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_ValidateToken_WrongSecret(t *testing.T) {
	issuerCfg := &config.Config{}
	issuerCfg.JWT.Secret = "secret-one"

	verifierCfg := &config.Config{}
	verifierCfg.JWT.Secret = "secret-two"

	token, err := jwt.New(issuerCfg).IssueAdminToken(1, "admin@mountainmixology.com", "Site Administrator")
	assert.NoError(t, err)

	_, err = jwt.New(verifierCfg).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_ValidateToken_Expired(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.ExpireHours = -1

	svc := jwt.New(cfg)

	token, err := svc.IssueAdminToken(1, "admin@mountainmixology.com", "Site Administrator")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestJWT_ValidateToken_Garbage(t *testing.T) {
	svc := jwt.New(&config.Config{})

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestClaims_AdminID_Invalid(t *testing.T) {
	claims := &jwt.Claims{}
	claims.Subject = "not-a-number"

	_, err := claims.AdminID()
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{
			name:     "valid bearer header",
			header:   "Bearer abc.def.ghi",
			expected: "abc.def.ghi",
			wantErr:  false,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "missing bearer prefix",
			header:  "Token abc.def.ghi",
			wantErr: true,
		},
		{
			name:    "prefix only",
			header:  "Bearer ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, token)
			}
		})
	}
}
