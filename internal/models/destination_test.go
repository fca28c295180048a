package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestination_JSONFieldNames(t *testing.T) {
	d := Destination{
		ID:          "id-1",
		Title:       "Paris",
		Description: "City of light",
		ImageURL:    "p.jpg",
		UserID:      "a@x.com",
		CreatedAt:   1700000000000,
	}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "id-1",
		"title": "Paris",
		"description": "City of light",
		"imageUrl": "p.jpg",
		"userId": "a@x.com",
		"createdAt": 1700000000000
	}`, string(b))
}

func TestUser_JSONFieldNamesAndPublic(t *testing.T) {
	u := User{Email: "a@x.com", Password: "pw1", Name: "Ann"}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","password":"pw1","name":"Ann"}`, string(b))

	p := u.Public()
	assert.Empty(t, p.Password)
	assert.Equal(t, "a@x.com", p.Email)
	assert.Equal(t, "pw1", u.Password)
}

func TestDestination_Created(t *testing.T) {
	d := Destination{CreatedAt: 1700000000123}
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), d.Created())
}

func TestDestinationPatch_Apply(t *testing.T) {
	base := Destination{ID: "1", Title: "a", Description: "b", ImageURL: "c", UserID: "u", CreatedAt: 5}
	title := "X"
	empty := ""

	tests := []struct {
		name  string
		patch DestinationPatch
		want  Destination
	}{
		{"empty patch", DestinationPatch{}, base},
		{"title only", DestinationPatch{Title: &title},
			Destination{ID: "1", Title: "X", Description: "b", ImageURL: "c", UserID: "u", CreatedAt: 5}},
		{"clear image", DestinationPatch{ImageURL: &empty},
			Destination{ID: "1", Title: "a", Description: "b", ImageURL: "", UserID: "u", CreatedAt: 5}},
		{"all fields", DestinationPatch{Title: &title, Description: &title, ImageURL: &title},
			Destination{ID: "1", Title: "X", Description: "X", ImageURL: "X", UserID: "u", CreatedAt: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(base))
		})
	}
}

func TestDestinationPatch_IsEmpty(t *testing.T) {
	s := "s"
	assert.True(t, DestinationPatch{}.IsEmpty())
	assert.False(t, DestinationPatch{Description: &s}.IsEmpty())
}
