package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles de usuario
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UID           string             `json:"uid" bson:"uid"`
	Email         string             `json:"email" bson:"email"`
	Name          string             `json:"name" bson:"name"`
	PhotoURL      string             `json:"photoURL" bson:"photoURL"`
	Role          string             `json:"role" bson:"role"`
	Phone         string             `json:"phone" bson:"phone"`
	SocialAccount string             `json:"socialAccount,omitempty" bson:"socialAccount,omitempty"`
	FacebookURL   string             `json:"facebookURL,omitempty" bson:"facebookURL,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// RegisterInput es el cuerpo de POST /users
type RegisterInput struct {
	UID           string `json:"uid" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name"`
	PhotoURL      string `json:"photoURL"`
	Phone         string `json:"phone"`
	SocialAccount string `json:"socialAccount"`
	FacebookURL   string `json:"facebookURL"`
	// Role se ignora al registrar; se acepta para no romper clientes existentes.
	Role string `json:"role"`
}

// ToUser construye un usuario nuevo con los valores por defecto
func (in RegisterInput) ToUser() *User {
	return &User{
		UID:           in.UID,
		Email:         in.Email,
		Name:          in.Name,
		PhotoURL:      in.PhotoURL,
		Role:          RoleUser,
		Phone:         in.Phone,
		SocialAccount: in.SocialAccount,
		FacebookURL:   in.FacebookURL,
	}
}

// UserUpdate representa los campos actualizables de un usuario
type UserUpdate struct {
	ToggleRole    bool    `json:"toggleRole"`
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	PhotoURL      *string `json:"photoURL,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	SocialAccount *string `json:"socialAccount,omitempty"`
	FacebookURL   *string `json:"facebookURL,omitempty"`
	Role          *string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

// Fields devuelve el $set resultante; vacío si no hay nada que cambiar.
func (u UserUpdate) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.PhotoURL != nil {
		set["photoURL"] = *u.PhotoURL
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.SocialAccount != nil {
		set["socialAccount"] = *u.SocialAccount
	}
	if u.FacebookURL != nil {
		set["facebookURL"] = *u.FacebookURL
	}
	if u.Role != nil {
		set["role"] = *u.Role
	}
	return set
}

// TouchesRole indica si la actualización cambia el rol de alguna forma
func (u UserUpdate) TouchesRole() bool {
	return u.ToggleRole || u.Role != nil
}
