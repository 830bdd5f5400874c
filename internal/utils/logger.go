package utils

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// LogEvent prints one console log line: [MODULE] action=... request_id=... msg=...
// Payloads must be summarized by the caller; newlines are flattened.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, reqOrDash(requestID), oneLine(message))
}

// LogFields is LogEvent with key/value pairs instead of a free-form message.
// Values containing spaces or quotes are quoted. An odd trailing key is logged as key=?.
func LogFields(requestID, module, action string, kv ...any) {
	var b strings.Builder
	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=", kv[i])
		if i+1 >= len(kv) {
			b.WriteByte('?')
			break
		}
		b.WriteString(fieldValue(kv[i+1]))
	}
	log.Printf("[%s] action=%s request_id=%s %s", strings.ToUpper(module), action, reqOrDash(requestID), b.String())
}

func reqOrDash(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "-"
	}
	return id
}

func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func fieldValue(v any) string {
	s := oneLine(fmt.Sprint(v))
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return strconv.Quote(s)
	}
	return s
}
