package schema

// Static regex fragments for JSON and format leaf types, transcribed
// verbatim from the reference implementation's constant table.

const (
	// StringInner matches any character legal inside a JSON string,
	// excluding the surrounding quotes.
	StringInner = `([^"\\\x00-\x1F\x7F-\x9F]|\\["\\/bfnrt])`
	// String matches a complete JSON string literal.
	String = `"([^"\\\x00-\x1F\x7F-\x9F]|\\["\\/bfnrt])*"`
	// Integer matches a JSON integer literal.
	Integer = `(-)?(0|[1-9][0-9]*)`
	// Number matches a JSON number literal.
	Number = `((-)?(0|[1-9][0-9]*))(\.[0-9]+)?([eE][+-][0-9]+)?`
	// Boolean matches a JSON boolean literal.
	Boolean = `(true|false)`
	// Null matches the JSON null literal.
	Null = `null`

	// Whitespace is the default whitespace fragment substituted
	// wherever inter-token whitespace is allowed. It is fixed rather
	// than left to the model's choice, since unconstrained whitespace
	// led to pathological behavior with small models.
	Whitespace = `[ ]?`

	// DateTime matches an RFC 3339 / ISO 8601 date-time string.
	DateTime = `"(-?(?:[1-9][0-9]*)?[0-9]{4})-(1[0-2]|0[1-9])-(3[01]|0[1-9]|[12][0-9])T(2[0-3]|[01][0-9]):([0-5][0-9]):([0-5][0-9])(\.[0-9]{3})?(Z)?"`
	// Date matches an ISO 8601 date string.
	Date = `"(?:\d{4})-(?:0[1-9]|1[0-2])-(?:0[1-9]|[1-2][0-9]|3[0-1])"`
	// Time matches an ISO 8601 time string.
	Time = `"(2[0-3]|[01][0-9]):([0-5][0-9]):([0-5][0-9])(\.[0-9]+)?(Z)?"`
	// UUID matches a canonical UUID string.
	UUID = `"[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}"`
	// URI matches an RFC 3986 URI string.
	URI = `"(?:(https?|ftp):\/\/([^\s:@]+(:[^\s:@]*)?@)?([a-zA-Z\d.-]+\.[a-zA-Z]{2,}|localhost)(:\d+)?(\/[^\s?#]*)?(\?[^\s#]*)?(#[^\s]*)?|urn:[a-zA-Z\d][a-zA-Z\d\-]{0,31}:[^\s]+)"`
	// Email matches an RFC 5322 email address string.
	Email = `"(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")@(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?|\[(?:(?:(2(5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9]))\.){3}(?:(2(5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9])|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])"`
)

// JsonType is a JSON Schema primitive type whose regex has no further
// parameters.
type JsonType int

const (
	JsonTypeString JsonType = iota
	JsonTypeInteger
	JsonTypeNumber
	JsonTypeBoolean
	JsonTypeNull
)

// Regex returns the fixed fragment for t.
func (t JsonType) Regex() string {
	switch t {
	case JsonTypeString:
		return String
	case JsonTypeInteger:
		return Integer
	case JsonTypeNumber:
		return Number
	case JsonTypeBoolean:
		return Boolean
	case JsonTypeNull:
		return Null
	default:
		return ""
	}
}

// FormatType is a supported "format" value for a string-typed schema.
type FormatType int

const (
	FormatDateTime FormatType = iota
	FormatDate
	FormatTime
	FormatUUID
	FormatURI
	FormatEmail
)

// Regex returns the fixed fragment for f.
func (f FormatType) Regex() string {
	switch f {
	case FormatDateTime:
		return DateTime
	case FormatDate:
		return Date
	case FormatTime:
		return Time
	case FormatUUID:
		return UUID
	case FormatURI:
		return URI
	case FormatEmail:
		return Email
	default:
		return ""
	}
}

// ParseFormatType maps a schema "format" string to a FormatType, or
// reports false if unsupported.
func ParseFormatType(s string) (FormatType, bool) {
	switch s {
	case "date-time":
		return FormatDateTime, true
	case "date":
		return FormatDate, true
	case "time":
		return FormatTime, true
	case "uuid":
		return FormatUUID, true
	case "uri":
		return FormatURI, true
	case "email":
		return FormatEmail, true
	default:
		return 0, false
	}
}
