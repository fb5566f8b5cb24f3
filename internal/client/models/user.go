package models

// User is an account as listed on the admin dashboard.
type User struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	RollNumber string `json:"rollNumber,omitempty"`
	Department string `json:"department,omitempty"`
}

type AdminStats struct {
	TotalUsers int `json:"totalUsers"`
	TotalPolls int `json:"totalPolls"`
	TotalVotes int `json:"totalVotes"`
}
