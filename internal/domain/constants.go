package domain

import "github.com/m04kA/SMC-ShareItService/pkg/types"

// Business validation constants
const (
	MaxCommentLength            = 512
	MaxNameLength               = 255
	MaxEmailLength              = 512
	MaxDescriptionLength        = 2000
	MaxRequestDescriptionLength = 2000
)

// Time format constants
const (
	// DateTimeFormat формат дат в API, без часового пояса
	DateTimeFormat = types.DateTimeLayout
)
