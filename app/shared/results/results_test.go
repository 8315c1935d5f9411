package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationResult(t *testing.T) {
	ok := SuccessResult[int, error](3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 3, *ok.Success)

	failed := FailureResult[int, error](errors.New("nope"))
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsSuccess())
	assert.EqualError(t, *failed.Failure, "nope")

	var empty OperationResult[int, error]
	assert.False(t, empty.IsSuccess())
	assert.False(t, empty.IsFailure())
}
