package integration_test

const (
	// Identity headers as the API gateway would assert them.
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	TestManagerId = 1
	TestUserId    = 42
	TestUserEmail = "moviegoer@example.com"
)

func managerHeaders() map[string]string {
	return map[string]string{
		HeaderUserID:   "1",
		HeaderUserRole: "MANAGER",
	}
}

func userHeaders() map[string]string {
	return map[string]string{
		HeaderUserID:    "42",
		HeaderUserEmail: TestUserEmail,
		HeaderUserRole:  "USER",
	}
}
