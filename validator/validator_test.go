package validator

import (
	"testing"
	"time"

	"salestracker/constants"
	"salestracker/errors"
	"salestracker/models"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sales manager", "Sales Manager"},
		{"  SALES   associate ", "Sales Associate"},
		{"régional dírector", "Regional Director"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRole(tt.in), "FormatRole(%q)", tt.in)
	}
}

func TestCanonicalRole(t *testing.T) {
	role, ok := CanonicalRole("account EXECUTIVE")
	assert.True(t, ok)
	assert.Equal(t, constants.RoleAccountExecutive, role)

	_, ok = CanonicalRole("Intern")
	assert.False(t, ok)
}

func TestSuggestRole(t *testing.T) {
	assert.Equal(t, constants.RoleSalesManager, SuggestRole("sales manger"))
	assert.Equal(t, "", SuggestRole("completely unrelated words"))
	assert.Contains(t, UnknownRoleMessage("sales manger"), `Did you mean "Sales Manager"?`)
}

func TestValidateMonthAndYear(t *testing.T) {
	for _, m := range []string{"01", "09", "10", "12"} {
		assert.NoError(t, ValidateMonth("fromMonth", m), m)
	}
	for _, m := range []string{"", "1", "00", "13", "1a", "001"} {
		err := ValidateMonth("fromMonth", m)
		require.Error(t, err, m)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange), m)
	}
	assert.NoError(t, ValidateYear("fromYear", "2023"))
	for _, y := range []string{"", "23", "20234", "2O23"} {
		err := ValidateYear("fromYear", y)
		require.Error(t, err, y)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange), y)
	}
}

func TestValidateSale(t *testing.T) {
	valid := models.Sale{UserID: 1, Amount: decimal.RequireFromString("10.25"), Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.NoError(t, ValidateSale(&valid))

	tests := map[string]func(s *models.Sale){
		"missing user":     func(s *models.Sale) { s.UserID = 0 },
		"zero amount":      func(s *models.Sale) { s.Amount = decimal.Zero },
		"negative amount":  func(s *models.Sale) { s.Amount = decimal.NewFromInt(-5) },
		"too many places":  func(s *models.Sale) { s.Amount = decimal.RequireFromString("1.001") },
		"missing the date": func(s *models.Sale) { s.Date = time.Time{} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			err := ValidateSale(&s)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
		})
	}
}

func TestValidateUserAndGroup(t *testing.T) {
	assert.NoError(t, ValidateUser(&models.User{Name: "Ann", Role: constants.RoleSalesManager}))
	assert.Error(t, ValidateUser(&models.User{Name: " ", Role: constants.RoleSalesManager}))
	assert.Error(t, ValidateUser(&models.User{Name: "Ann", Role: "sales manager"}))
	assert.NoError(t, ValidateGroup(&models.Group{Name: "West"}))
	assert.Error(t, ValidateGroup(&models.Group{Name: ""}))
}

func TestRegister_CustomTags(t *testing.T) {
	v := playground.New()
	require.NoError(t, Register(v))

	type body struct {
		Name string  `validate:"required,notblank"`
		Role *string `validate:"omitempty,salesrole"`
	}
	good := "sales associate"
	bad := "janitor"
	assert.NoError(t, v.Struct(body{Name: "Ann", Role: &good}))
	assert.NoError(t, v.Struct(body{Name: "Ann"}))
	assert.Error(t, v.Struct(body{Name: "   "}))
	assert.Error(t, v.Struct(body{Name: "Ann", Role: &bad}))
}
