package rest

import (
	"errors"
	"net/mail"

	"github.com/dmitrijs2005/drivenpass/internal/server/credentials"
	"github.com/dmitrijs2005/drivenpass/internal/server/networks"
)

// Body validation limits. Password minimums intentionally differ between
// registration and sign-in, matching the public API contract.
const (
	minRegisterPasswordLen = 6
	minSignInPasswordLen   = 10
	maxTitleLen            = 50
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (r registerRequest) validate() error {
	if !validEmail(r.Email) {
		return errors.New("email must be a valid email address")
	}
	if len(r.Password) < minRegisterPasswordLen {
		return errors.New("password is too short")
	}
	return nil
}

func (r signInRequest) validate() error {
	if !validEmail(r.Email) {
		return errors.New("email must be a valid email address")
	}
	if len(r.Password) < minSignInPasswordLen {
		return errors.New("password is too short")
	}
	return nil
}

func validateCredentialParams(p credentials.CreateParams) error {
	if p.Title == "" || len(p.Title) > maxTitleLen {
		return errors.New("title is required and must be at most 50 characters")
	}
	if p.URL == "" {
		return errors.New("url is required")
	}
	if p.Username == "" {
		return errors.New("username is required")
	}
	if p.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func validateNetworkParams(p networks.CreateParams) error {
	if p.Title == "" || len(p.Title) > maxTitleLen {
		return errors.New("title is required and must be at most 50 characters")
	}
	if p.Network == "" {
		return errors.New("network is required")
	}
	if p.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
