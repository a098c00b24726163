/*
Package schema declares the Child Security data model.

Tables are plain values rendered into DDL for a Dialect:

	for _, stmt := range schema.DDL(schema.SQLite) {
		db.Exec(stmt)
	}

Every statement uses IF NOT EXISTS, so the script is safe to run repeatedly.

# Tables

Tables returns twenty tables in dependency order; Validate rejects any list
where a table references one declared later.

	users 1──* parent_connections (user1_id, user2_id)
	users 1──* conversations 1──* conversation_participants
	conversations 1──* messages 1──* message_reactions
	users 1──* community_alerts 1──* alert_comments
	users 1──* help_requests 1──* help_responses
	education_categories 1──* educational_content 1──* quiz_questions
	educational_content 1──* user_progress
	users 1──* parenting_advice 1──* advice_comments

Owned rows cascade on delete. resolved_by, reviewed_by and the two self
references (reply_to_message_id, parent_comment_id) are set to NULL instead.

user_interactions, ratings, notifications and reports point at other rows
through a (target_id, target_type) pair; see TargetKind.

# Seed data

Categories decodes the embedded seeds.yaml.
*/
package schema
