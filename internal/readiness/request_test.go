package readiness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{"academics":80,"career_skills":60,"life_skills":70,"technical_skills":75,"communication":65,"teamwork":85,"critical_thinking":70}`

func decodeMessages(t *testing.T, body string) []string {
	t.Helper()
	_, err := NewValidator().DecodeProgress([]byte(body))
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Messages
}

func TestDecodeProgressValid(t *testing.T) {
	p, err := NewValidator().DecodeProgress([]byte(validBody))
	require.NoError(t, err)
	assert.Equal(t, progressOf([7]float64{80, 60, 70, 75, 65, 85, 70}), p)
}

func TestDecodeProgressAcceptsBoundsAndDecimals(t *testing.T) {
	body := `{"academics":0,"career_skills":100,"life_skills":12.5,"technical_skills":99.99,"communication":0.01,"teamwork":1e1,"critical_thinking":100.0}`
	p, err := NewValidator().DecodeProgress([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Academics)
	assert.Equal(t, 100.0, p.CareerSkills)
	assert.Equal(t, 12.5, p.LifeSkills)
	assert.Equal(t, 10.0, p.Teamwork)
}

func TestDecodeProgressMissingField(t *testing.T) {
	body := `{"academics":80,"career_skills":60,"life_skills":70,"technical_skills":75,"communication":65,"teamwork":85}`
	assert.Equal(t,
		[]string{"critical_thinking must be a number conforming to the specified constraints"},
		decodeMessages(t, body))
}

func TestDecodeProgressOutOfRange(t *testing.T) {
	body := `{"academics":150,"career_skills":-10,"life_skills":70,"technical_skills":100.5,"communication":65,"teamwork":85,"critical_thinking":70}`
	assert.Equal(t, []string{
		"academics must not be greater than 100",
		"career_skills must not be less than 0",
		"technical_skills must not be greater than 100",
	}, decodeMessages(t, body))
}

func TestDecodeProgressWrongTypes(t *testing.T) {
	body := `{"academics":"80","career_skills":null,"life_skills":true,"technical_skills":[75],"communication":{},"teamwork":85,"critical_thinking":70}`
	assert.Equal(t, []string{
		"academics must be a number conforming to the specified constraints",
		"career_skills must be a number conforming to the specified constraints",
		"life_skills must be a number conforming to the specified constraints",
		"technical_skills must be a number conforming to the specified constraints",
		"communication must be a number conforming to the specified constraints",
	}, decodeMessages(t, body))
}

func TestDecodeProgressUnknownProperties(t *testing.T) {
	body := `{"academics":80,"career_skills":60,"life_skills":70,"technical_skills":75,"communication":65,"teamwork":85,"critical_thinking":70,"zeal":1,"attendance":90}`
	assert.Equal(t, []string{
		"property attendance should not exist",
		"property zeal should not exist",
	}, decodeMessages(t, body))
}

func TestDecodeProgressCollectsEverything(t *testing.T) {
	body := `{"academics":150,"life_skills":70,"technical_skills":75,"communication":65,"teamwork":85,"critical_thinking":-1,"extra":true}`
	assert.Equal(t, []string{
		"academics must not be greater than 100",
		"career_skills must be a number conforming to the specified constraints",
		"critical_thinking must not be less than 0",
		"property extra should not exist",
	}, decodeMessages(t, body))
}

func TestDecodeProgressEmptyBody(t *testing.T) {
	msgs := decodeMessages(t, "  ")
	require.Len(t, msgs, 7)
	assert.Equal(t, "academics must be a number conforming to the specified constraints", msgs[0])
	assert.Equal(t, "critical_thinking must be a number conforming to the specified constraints", msgs[6])
}

func TestDecodeProgressRejectsNonObject(t *testing.T) {
	for _, body := range []string{`[1,2,3]`, `null`, `42`, `"academics"`, `{"academics":`, `{} {}`} {
		t.Run(body, func(t *testing.T) {
			_, err := NewValidator().DecodeProgress([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidBody)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}
	assert.Equal(t, "validation failed: a; b", err.Error())
}
