package redis

import "fmt"

// Key prefix for all persisted data
const keyPrefix = "wordparty"

// profileKey returns the Redis key for a UserProfile
func profileKey(username string) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, username)
}

// profileIndexKey returns the Redis key for the SET of all profile keys
func profileIndexKey() string {
	return fmt.Sprintf("%s:idx:profiles", keyPrefix)
}

// maintenanceKey returns the Redis key for the maintenance flag
func maintenanceKey() string {
	return fmt.Sprintf("%s:maintenance", keyPrefix)
}
