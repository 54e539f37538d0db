package model

import "time"

// Role values stored in the users.role column.  The application only
// distinguishes between regular voters and administrators.
const (
    RoleVoter = "voter" // default role assigned on registration
    RoleAdmin = "admin" // granted only through the admin registration flow
)

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  The
// struct is used internally by the repository layer; handlers define
// separate response types with the JSON shape the front end expects,
// so no password hash ever leaks into a response.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FullName     – display name provided at registration.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – either "voter" or "admin".
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    FullName     string    // users.full_name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
