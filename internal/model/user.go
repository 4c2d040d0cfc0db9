package model

import "time"

type User struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	ImageUserName string    `db:"image_user_name" json:"imageUserName"`
	ImageUserURL  string    `db:"image_user_url" json:"imageUserUrl"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
