package types

import "errors"

var (
	ErrNoProfilesFound      = errors.New("no AWS profiles found. Please configure AWS CLI first")
	ErrNoValidProfilesFound = errors.New("none of the specified profiles were found in AWS configuration")
	ErrNoNotificationEmail  = errors.New("a notification email is required to manage the budget (set --email or notification_email)")
)
