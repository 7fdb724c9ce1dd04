package add_comment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Text) > domain.MaxCommentLength {
		return fmt.Errorf("%w: text is longer than %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}
