package schema

// Tables returns the twenty entities of the data model in dependency order:
// a table only references tables that appear before it, or itself.
// The slice is built on each call so callers may modify it.
func Tables() []Table {
	return []Table{
		{
			Name: "users",
			Columns: []Column{
				pk(),
				required("name", TypeText),
				{Name: "email", Type: TypeText, NotNull: true, Unique: true},
				optional("phone", TypeText),
				optional("avatar_url", TypeText),
				optional("address", TypeText),
				optional("latitude", TypeReal),
				optional("longitude", TypeReal),
				withDefault("rating", TypeReal, 4.0),
				withDefault("is_verified", TypeBool, false),
				withDefault("is_active", TypeBool, true),
				required("join_date", TypeTimestamp),
				optional("last_seen", TypeTimestamp),
				withDefault("children_count", TypeInt, 1),
				optional("bio", TypeText),
				withDefault("preferred_language", TypeText, "fr"),
				optional("notification_token", TypeText),
				withDefault("privacy_settings", TypeJSON, `{"profile_visible": true, "location_sharing": false}`),
				createdAt(),
				updatedAt(),
			},
		},
		{
			Name: "education_categories",
			Columns: []Column{
				pk(),
				{Name: "name", Type: TypeText, NotNull: true, Unique: true},
				optional("description", TypeText),
				optional("icon", TypeText),
				withDefault("sort_order", TypeInt, 0),
				withDefault("is_active", TypeBool, true),
				createdAt(),
			},
		},
		{
			Name: "parent_connections",
			Columns: []Column{
				pk(),
				owner("user1_id", "users"),
				owner("user2_id", "users"),
				withDefault("status", TypeText, "pending"),
				required("connection_date", TypeTimestamp),
				optional("last_interaction", TypeTimestamp),
				withDefault("trust_score", TypeReal, 3.0),
				createdAt(),
			},
			Uniques: [][]string{{"user1_id", "user2_id"}},
		},
		{
			Name: "conversations",
			Columns: []Column{
				pk(),
				optional("title", TypeText),
				withDefault("type", TypeText, "private"),
				owner("created_by", "users"),
				createdAt(),
				updatedAt(),
				withDefault("is_active", TypeBool, true),
				optional("last_message_at", TypeTimestamp),
				withDefault("participants_count", TypeInt, 2),
				withDefault("conversation_settings", TypeJSON, "{}"),
			},
		},
		{
			Name: "conversation_participants",
			Columns: []Column{
				pk(),
				owner("conversation_id", "conversations"),
				owner("user_id", "users"),
				withDefault("role", TypeText, "member"),
				withDefault("joined_at", TypeTimestamp, Now),
				optional("last_read_at", TypeTimestamp),
				withDefault("is_muted", TypeBool, false),
				withDefault("is_active", TypeBool, true),
			},
			Uniques: [][]string{{"conversation_id", "user_id"}},
		},
		{
			Name: "messages",
			Columns: []Column{
				pk(),
				owner("conversation_id", "conversations"),
				owner("sender_id", "users"),
				required("content", TypeText),
				withDefault("message_type", TypeText, "text"),
				optional("media_url", TypeText),
				withDefault("sent_at", TypeTimestamp, Now),
				withDefault("is_edited", TypeBool, false),
				optional("edited_at", TypeTimestamp),
				link("reply_to_message_id", "messages"),
				withDefault("status", TypeText, "sent"),
				optional("location_data", TypeJSON),
			},
		},
		{
			Name: "message_reactions",
			Columns: []Column{
				pk(),
				owner("message_id", "messages"),
				owner("user_id", "users"),
				required("reaction_type", TypeText),
				createdAt(),
			},
			Uniques: [][]string{{"message_id", "user_id", "reaction_type"}},
		},
		{
			Name: "community_alerts",
			Columns: []Column{
				pk(),
				owner("user_id", "users"),
				required("title", TypeText),
				required("description", TypeText),
				required("alert_type", TypeText),
				withDefault("severity", TypeText, "medium"),
				required("latitude", TypeReal),
				required("longitude", TypeReal),
				optional("address", TypeText),
				createdAt(),
				updatedAt(),
				withDefault("is_resolved", TypeBool, false),
				link("resolved_by", "users"),
				optional("resolved_at", TypeTimestamp),
				withDefault("views_count", TypeInt, 0),
				optional("media_urls", TypeJSON),
				optional("contact_info", TypeJSON),
			},
		},
		{
			Name: "alert_comments",
			Columns: []Column{
				pk(),
				owner("alert_id", "community_alerts"),
				owner("user_id", "users"),
				required("comment", TypeText),
				createdAt(),
				withDefault("is_helpful", TypeBool, false),
				withDefault("helpful_count", TypeInt, 0),
			},
		},
		{
			Name: "help_requests",
			Columns: []Column{
				pk(),
				owner("requester_id", "users"),
				required("title", TypeText),
				required("description", TypeText),
				required("category", TypeText),
				withDefault("urgency", TypeText, "normal"),
				optional("latitude", TypeReal),
				optional("longitude", TypeReal),
				createdAt(),
				updatedAt(),
				withDefault("is_resolved", TypeBool, false),
				withDefault("responses_count", TypeInt, 0),
			},
		},
		{
			Name: "help_responses",
			Columns: []Column{
				pk(),
				owner("request_id", "help_requests"),
				owner("responder_id", "users"),
				required("response", TypeText),
				optional("contact_method", TypeText),
				createdAt(),
				withDefault("is_accepted", TypeBool, false),
				optional("rating", TypeReal),
				optional("feedback", TypeText),
			},
		},
		{
			Name: "educational_content",
			Columns: []Column{
				pk(),
				owner("category_id", "education_categories"),
				required("title", TypeText),
				required("content", TypeText),
				withDefault("content_type", TypeText, "article"),
				withDefault("difficulty_level", TypeText, "beginner"),
				withDefault("estimated_duration", TypeInt, 5),
				optional("media_url", TypeText),
				optional("thumbnail_url", TypeText),
				withDefault("views_count", TypeInt, 0),
				withDefault("average_rating", TypeReal, 0.0),
				createdAt(),
				updatedAt(),
				withDefault("is_published", TypeBool, true),
				optional("tags", TypeText),
				optional("author", TypeText),
				withDefault("likes_count", TypeInt, 0),
			},
		},
		{
			Name: "quiz_questions",
			Columns: []Column{
				pk(),
				owner("content_id", "educational_content"),
				required("question", TypeText),
				required("options", TypeJSON),
				required("correct_answer", TypeText),
				optional("explanation", TypeText),
				withDefault("points", TypeInt, 10),
				withDefault("sort_order", TypeInt, 0),
			},
		},
		{
			Name: "user_progress",
			Columns: []Column{
				pk(),
				owner("user_id", "users"),
				owner("content_id", "educational_content"),
				withDefault("progress_status", TypeText, "not_started"),
				withDefault("score", TypeInt, 0),
				withDefault("time_spent", TypeInt, 0),
				optional("started_at", TypeTimestamp),
				optional("completed_at", TypeTimestamp),
				withDefault("last_accessed", TypeTimestamp, Now),
				optional("notes", TypeText),
				withDefault("attempts_count", TypeInt, 0),
			},
			Uniques: [][]string{{"user_id", "content_id"}},
		},
		{
			Name: "parenting_advice",
			Columns: []Column{
				pk(),
				owner("author_id", "users"),
				required("title", TypeText),
				required("content", TypeText),
				required("category", TypeText),
				optional("age_group", TypeText),
				optional("tags", TypeText),
				withDefault("views_count", TypeInt, 0),
				withDefault("average_rating", TypeReal, 0.0),
				createdAt(),
				updatedAt(),
				withDefault("is_featured", TypeBool, false),
				optional("source", TypeText),
				withDefault("likes_count", TypeInt, 0),
				withDefault("shares_count", TypeInt, 0),
			},
		},
		{
			Name: "advice_comments",
			Columns: []Column{
				pk(),
				owner("advice_id", "parenting_advice"),
				owner("user_id", "users"),
				required("comment", TypeText),
				createdAt(),
				withDefault("is_helpful", TypeBool, false),
				withDefault("helpful_count", TypeInt, 0),
				link("parent_comment_id", "advice_comments"),
			},
		},
		{
			Name: "user_interactions",
			Columns: []Column{
				pk(),
				owner("user_id", "users"),
				required("interaction_type", TypeText),
				required("target_id", TypeID),
				required("target_type", TypeText),
				optional("interaction_data", TypeJSON),
				createdAt(),
			},
		},
		{
			Name: "ratings",
			Columns: []Column{
				pk(),
				owner("user_id", "users"),
				required("target_id", TypeID),
				required("target_type", TypeText),
				{Name: "rating", Type: TypeReal, NotNull: true, Check: "rating >= 1 AND rating <= 5"},
				optional("review", TypeText),
				createdAt(),
				withDefault("is_anonymous", TypeBool, false),
			},
			Uniques: [][]string{{"user_id", "target_id", "target_type"}},
		},
		{
			Name: "notifications",
			Columns: []Column{
				pk(),
				owner("user_id", "users"),
				required("title", TypeText),
				required("message", TypeText),
				required("type", TypeText),
				optional("data", TypeJSON),
				withDefault("is_read", TypeBool, false),
				createdAt(),
				optional("read_at", TypeTimestamp),
				withDefault("priority", TypeText, "normal"),
			},
		},
		{
			Name: "reports",
			Columns: []Column{
				pk(),
				owner("reporter_id", "users"),
				required("target_id", TypeID),
				required("target_type", TypeText),
				required("reason", TypeText),
				optional("description", TypeText),
				withDefault("status", TypeText, "pending"),
				createdAt(),
				link("reviewed_by", "users"),
				optional("reviewed_at", TypeTimestamp),
				optional("action_taken", TypeText),
			},
		},
	}
}

// TableNames returns the table names in dependency order.
func TableNames() []string {
	tables := Tables()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

func pk() Column {
	return Column{Name: "id", Type: TypeID, PrimaryKey: true}
}

func required(name string, typ ColumnType) Column {
	return Column{Name: name, Type: typ, NotNull: true}
}

func optional(name string, typ ColumnType) Column {
	return Column{Name: name, Type: typ}
}

func withDefault(name string, typ ColumnType, v any) Column {
	return Column{Name: name, Type: typ, Default: v}
}

func createdAt() Column { return withDefault("created_at", TypeTimestamp, Now) }
func updatedAt() Column { return withDefault("updated_at", TypeTimestamp, Now) }

// owner is a required reference whose row is deleted along with the referenced row.
func owner(name, table string) Column {
	return Column{
		Name:       name,
		Type:       TypeID,
		NotNull:    true,
		References: &ForeignKey{Table: table, Column: "id", OnDelete: Cascade},
	}
}

// link is an optional reference that is cleared when the referenced row goes away.
func link(name, table string) Column {
	return Column{
		Name:       name,
		Type:       TypeID,
		References: &ForeignKey{Table: table, Column: "id", OnDelete: SetNull},
	}
}
