package apperrors

import "errors"

// 错误码
const (
	ErrCodeUnknown        = 1000
	ErrCodeDeckEmpty      = 2001
	ErrCodeHandFull       = 3001
	ErrCodeHandIncomplete = 3002
	ErrCodeInvalidCard    = 4001
)

// GameError 牌局错误（牌堆和手牌共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrDeckEmpty      = &GameError{Code: ErrCodeDeckEmpty, Message: "deck is empty"}
	ErrHandFull       = &GameError{Code: ErrCodeHandFull, Message: "hand is full"}
	ErrHandIncomplete = &GameError{Code: ErrCodeHandIncomplete, Message: "hand is not full"}
	ErrInvalidCard    = &GameError{Code: ErrCodeInvalidCard, Message: "invalid card"}
)

// CodeOf 返回错误码，非 GameError 返回 ErrCodeUnknown
func CodeOf(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ErrCodeUnknown
}
