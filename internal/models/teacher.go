package models

// TeacherRole is the permission level of a staff account.
type TeacherRole string

const (
	RoleTeacher TeacherRole = "teacher"
	RoleAdmin   TeacherRole = "admin"
)

// Teacher is a credentialed staff account allowed to change registrations.
type Teacher struct {
	Username     string      `json:"username"`
	DisplayName  string      `json:"display_name"`
	PasswordHash string      `json:"-"`
	Role         TeacherRole `json:"role"`
}

// TeacherPublic is Teacher without credential material for API responses.
type TeacherPublic struct {
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Role        TeacherRole `json:"role"`
}

// ToPublic converts Teacher to TeacherPublic.
func (t *Teacher) ToPublic() TeacherPublic {
	return TeacherPublic{
		Username:    t.Username,
		DisplayName: t.DisplayName,
		Role:        t.Role,
	}
}
