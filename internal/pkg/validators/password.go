package validators

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
)

// ValidatePassword enforces the configured password policy and returns every unmet rule.
func ValidatePassword(settings config.PasswordSettings, password string) error {
	var violations []string

	if utf8.RuneCountInString(password) < settings.RequiredLength {
		violations = append(violations, fmt.Sprintf("must be at least %d characters", settings.RequiredLength))
	}

	var hasDigit, hasLower, hasUpper, hasNonAlphanumeric bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r):
			hasNonAlphanumeric = true
		}
	}

	if settings.RequireDigit && !hasDigit {
		violations = append(violations, "must contain a digit")
	}
	if settings.RequireLowercase && !hasLower {
		violations = append(violations, "must contain a lowercase letter")
	}
	if settings.RequireUppercase && !hasUpper {
		violations = append(violations, "must contain an uppercase letter")
	}
	if settings.RequireNonAlphanumeric && !hasNonAlphanumeric {
		violations = append(violations, "must contain a non-alphanumeric character")
	}

	if len(violations) > 0 {
		return fmt.Errorf("password %s", strings.Join(violations, ", "))
	}
	return nil
}
