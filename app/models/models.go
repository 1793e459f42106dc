// Package models defines the documents persisted in MongoDB. Field names in
// bson tags match the collections the frontend already reads.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminRole is the only recognized role besides the default (empty) one.
const AdminRole = "admin"

// User is a registered customer. Email is unique; UserRole is empty for a
// regular customer and set by the promotion endpoint only.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	UserRole string             `bson:"userRole,omitempty" json:"userRole,omitempty"`
}

// IsAdmin reports whether the user currently holds the admin role.
func (u User) IsAdmin() bool { return u.UserRole == AdminRole }

// MenuItem is a dish on the menu.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}

// Review is a customer review shown on the landing page.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}

// CartEntry is a pending, uncommitted item selection owned by one customer.
// It is destroyed either individually or in bulk when an order is finalized.
type CartEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerEmail string             `bson:"CustomerEmail" json:"CustomerEmail"`
	MenuItemID    string             `bson:"menuItemId" json:"menuItemId"`
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Price         float64            `bson:"price" json:"price"`
}

// Payment is the immutable record of a completed order. It references the
// cart entries it settled; those entries are deleted in the same logical
// operation that inserts the payment.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuIDs       []string           `bson:"menuIds,omitempty" json:"menuIds,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}

// StatsSnapshot is the derived admin dashboard aggregate. The four values
// are computed independently; they are not transactionally consistent with
// each other.
type StatsSnapshot struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
