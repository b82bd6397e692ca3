package classify

import "github.com/heartmarshall/casedesk/internal/model"

type fieldKey struct {
	kind  model.ErrorKind
	field string
}

var fieldMessages = map[fieldKey]string{
	{model.KindInvalidReference, "application_id"}:       "The selected application does not exist or is inactive.",
	{model.KindInvalidReference, "origin_id"}:            "The selected origin does not exist or is inactive.",
	{model.KindInvalidReference, "priority_id"}:          "The selected priority does not exist or is inactive.",
	{model.KindInvalidReference, "owner_actor_id"}:       "The selected owner does not exist or is inactive.",
	{model.KindInvalidReference, "assigned_to_actor_id"}: "The selected assignee does not exist or is inactive.",
	{model.KindInvalidReference, "created_by_actor_id"}:  "The creating actor does not exist or is inactive.",
	{model.KindInvalidReference, "case_id"}:              "The selected case does not exist.",
	{model.KindInvalidReference, "todo_id"}:              "The selected todo does not exist.",
	{model.KindInvalidReference, "role_id"}:              "The selected role does not exist or is inactive.",

	{model.KindDuplicateKey, "case_number"}: "A case with this case number already exists.",
	{model.KindDuplicateKey, "email"}:       "An actor with this email already exists.",
	{model.KindDuplicateKey, "name"}:        "An item with this name already exists.",
	{model.KindDuplicateKey, "role_id"}:     "This permission is already granted to the role.",

	{model.KindDependencyExists, "case_records"}: "Cases still reference this record.",
	{model.KindDependencyExists, "todo_records"}: "Todos still reference this record.",
	{model.KindDependencyExists, "time_entries"}: "Time entries still reference this record.",
	{model.KindDependencyExists, "actors"}:       "Actors still reference this record.",
}

var genericMessages = map[model.ErrorKind]string{
	model.KindInvalidReference: "A referenced record does not exist or is inactive.",
	model.KindDuplicateKey:     "A record with the same value already exists.",
	model.KindNotAuthorized:    "You are not allowed to perform this action.",
	model.KindNotFound:         "The requested record was not found.",
	model.KindSessionInvalid:   "Your session is no longer valid. Please sign in again.",
	model.KindDependencyExists: "The record is still referenced by other records.",
	model.KindValidation:       "The submitted data is invalid.",
	model.KindUnknown:          "Something went wrong. Please try again.",
}

// Message returns the user-facing message for kind, specialised by field when
// a field-specific message exists.
func Message(kind model.ErrorKind, field string) string {
	if field != "" {
		if msg, ok := fieldMessages[fieldKey{kind, field}]; ok {
			return msg
		}
	}
	if msg, ok := genericMessages[kind]; ok {
		return msg
	}
	return genericMessages[model.KindUnknown]
}
