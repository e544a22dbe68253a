package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserForm_ParseCreateRequiresCredentials(t *testing.T) {
	_, err := UserForm{FirstName: "Ana"}.Parse(true)
	require.Error(t, err)

	verrs := err.(ValidationErrors)
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
}

func TestUserForm_ParseUpdate(t *testing.T) {
	u, err := UserForm{FirstName: "Ana", Credits: "12.5"}.Parse(false)
	require.NoError(t, err)
	assert.Equal(t, "12.5", u.Credits.String())
	assert.Empty(t, u.Password)

	u, err = UserForm{}.Parse(false)
	require.NoError(t, err)
	assert.Equal(t, "0", u.Credits.String())

	_, err = UserForm{Credits: "beaucoup"}.Parse(false)
	require.Error(t, err)
	assert.Equal(t, []string{MsgCreditsInvalid}, err.(ValidationErrors).For("credits"))
}

func TestUser_PasswordOmittedWhenEmpty(t *testing.T) {
	u, err := UserForm{Email: "a@b.c"}.Parse(false)
	require.NoError(t, err)

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
}

func TestUser_UnmarshalLooseFields(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"_id":"u1","firstName":"Ana","lastName":"Diaz","phone":612345678,"codePostal":92000,"credits":""}`), &u)
	require.NoError(t, err)

	assert.Equal(t, FlexString("612345678"), u.Phone)
	assert.Equal(t, FlexString("92000"), u.CodePostal)
	assert.False(t, u.Credits.Valid)
	assert.Equal(t, "Ana Diaz", u.FullName())

	form := UserFormFrom(&u)
	assert.Equal(t, "92000", form.CodePostal)
	assert.Empty(t, form.Password)
}
