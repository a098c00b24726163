package schema

// PairIndex is the unique index over the unordered user pair of parent_connections.
// Building it fails on a store that already holds a pair in both orders.
const PairIndex = "idx_connections_pair"

// Indexes returns the secondary indexes created after the tables.
// All but the last serve read paths only; idx_connections_pair makes a
// connection unique regardless of which user is stored first.
func Indexes() []Index {
	return []Index{
		{Name: "idx_users_email", Table: "users", Columns: []string{"email"}},
		{Name: "idx_users_location", Table: "users", Columns: []string{"latitude", "longitude"}},
		{Name: "idx_messages_conversation", Table: "messages", Columns: []string{"conversation_id", "sent_at"}},
		{Name: "idx_alerts_location", Table: "community_alerts", Columns: []string{"latitude", "longitude"}},
		{Name: "idx_alerts_type", Table: "community_alerts", Columns: []string{"alert_type", "created_at"}},
		{Name: "idx_notifications_user", Table: "notifications", Columns: []string{"user_id", "is_read"}},
		{Name: "idx_user_progress_user", Table: "user_progress", Columns: []string{"user_id", "progress_status"}},
		{Name: "idx_connections_users", Table: "parent_connections", Columns: []string{"user1_id", "user2_id"}},
		{Name: PairIndex, Table: "parent_connections", Columns: []string{"user1_id", "user2_id"}, Unique: true, Pair: true},
	}
}

// IndexNames returns the names of all indexes in creation order.
func IndexNames() []string {
	indexes := Indexes()
	names := make([]string, len(indexes))
	for i, idx := range indexes {
		names[i] = idx.Name
	}
	return names
}
