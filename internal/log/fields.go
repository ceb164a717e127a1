package log

import "caixa/internal/core"

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldPath        = "path"
	FieldAmount      = "amount"
	FieldKind        = "kind"
	FieldDescription = "description"
	FieldRecipient   = "recipient"
	FieldProvider    = "provider"
	FieldSize        = "size"
	FieldState       = "state"
	FieldEventID     = "event_id"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentDaybook  = "daybook"
	ComponentMailer   = "mailer"
	ComponentAMQP     = "amqp"
	ComponentMenu     = "menu"
	ComponentServices = "services"
	ComponentConfig   = "config"
)

// Operations defines standard operation names
const (
	OpRecord   = "record"
	OpList     = "list"
	OpSend     = "send"
	OpPublish  = "publish"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeNotFound      = "not_found_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithPath adds the day file path
func (f LogFields) WithPath(path string) LogFields {
	f[FieldPath] = path
	return f
}

// WithMovement adds movement-related fields
func (f LogFields) WithMovement(m core.Movement) LogFields {
	f[FieldAmount] = core.FormatAmount(m.Amount)
	f[FieldKind] = m.Kind.String()
	f[FieldDescription] = m.Description
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
