package handler // handler defines http handlers

import (
    "errors"  // errors provides the sentinel value used in getUserID
    "strconv" // strconv converts strings to numeric types

    "github.com/labstack/echo/v4" // echo defines request context types
)

// userResp is the user shape returned to clients. The password hash is
// deliberately absent.
type userResp struct {
    ID       uint64 `json:"id"`
    FullName string `json:"full_name"`
    Email    string `json:"email"`
    Role     string `json:"role"`
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWTAuth stores the value as uint64, but the switch tolerates the other
// numeric encodings a claim can decode to.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}
