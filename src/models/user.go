package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleProfessor = "Professor"
	RoleStudent   = "Student"
)

// User account. Password accepted from the frontend, never sent back.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role" json:"role"`
}
