package user

const (
	RoleUser     = "user"
	RoleStudent  = "student"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// UserDocument is the credential record. Password holds the bcrypt hash and is
// never serialized to clients.
type UserDocument struct {
	Id        string `bson:"_id" json:"id"`
	Email     string `bson:"email" json:"email"`
	Password  string `bson:"password" json:"-"`
	Role      string `bson:"role" json:"role"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

// Profile is the role specific record, stored 1:1 with the user id in the
// collection of its role. Only the fields of that role are set.
type Profile struct {
	UserId     string `bson:"_id" json:"userId"`
	Name       string `bson:"name" json:"name"`
	Course     string `bson:"course,omitempty" json:"course,omitempty"`
	YearLevel  string `bson:"yearLevel,omitempty" json:"yearLevel,omitempty"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Position   string `bson:"position,omitempty" json:"position,omitempty"`
}

type ProfilePayload struct {
	Name       string `json:"name"`
	Course     string `json:"course"`
	YearLevel  string `json:"yearLevel"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type ProfileResponse struct {
	Role    string   `json:"role"`
	Profile *Profile `json:"profile"`
}

type UserDetailResponse struct {
	User    *UserDocument `json:"user"`
	Profile *Profile      `json:"profile"`
}

func HasProfile(role string) bool {
	return role == RoleStudent || role == RoleEmployee || role == RoleAdmin
}

// NewProfile builds the profile of role from the payload, keeping only that
// role's fields. It returns false when a required field is blank.
func NewProfile(role, userId string, payload *ProfilePayload) (*Profile, bool) {
	profile := &Profile{
		UserId: userId,
		Name:   payload.Name,
	}

	switch role {
	case RoleStudent:
		profile.Course = payload.Course
		profile.YearLevel = payload.YearLevel
		return profile, profile.Name != "" && profile.Course != "" && profile.YearLevel != ""
	case RoleEmployee:
		profile.Department = payload.Department
		profile.Position = payload.Position
		return profile, profile.Name != "" && profile.Department != "" && profile.Position != ""
	case RoleAdmin:
		return profile, profile.Name != ""
	}

	return nil, false
}

// UpdateFields returns the non empty fields of payload that apply to role,
// keyed by their bson name.
func (payload *ProfilePayload) UpdateFields(role string) map[string]string {
	fields := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	set("name", payload.Name)
	switch role {
	case RoleStudent:
		set("course", payload.Course)
		set("yearLevel", payload.YearLevel)
	case RoleEmployee:
		set("department", payload.Department)
		set("position", payload.Position)
	}

	return fields
}
