package entities

// Session - контекст пользователя, который явно передается контроллерам.
// Пустой User означает неаутентифицированную сессию.
type Session struct {
	ID   string
	User *User
}

func (s Session) IsAuthenticated() bool {
	return s.ID != "" && s.User != nil
}

func (s Session) HasRole(role UserRole) bool {
	return s.IsAuthenticated() && s.User.Role == role
}

func (s Session) HasAnyRole(roles ...UserRole) bool {
	for _, r := range roles {
		if s.HasRole(r) {
			return true
		}
	}
	return false
}

// StorageEntry - запись клиентского хранилища сессии (аналог localStorage).
type StorageEntry struct {
	SessionID string
	Key       string
	Value     []byte
}
