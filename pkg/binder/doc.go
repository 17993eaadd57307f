// Package binder decodes request bodies and documents into Go structs before
// they are handed to a validator.
//
// Binders only decode. They never coerce or sanitize values, so the validator
// sees exactly what the client sent (a missing field stays nil).
//
// # Usage
//
//	type CreateUserRequest struct {
//		Username *string `json:"username" yaml:"username"`
//		Age      int     `json:"age" yaml:"age"`
//	}
//
//	bind := binder.JSON(binder.DefaultMaxJSONSize)
//
//	func create(w http.ResponseWriter, r *http.Request) {
//		var req CreateUserRequest
//		if err := bind(r, &req); err != nil {
//			// map the error to a status code, see below
//		}
//	}
//
// Documents on disk go through Document:
//
//	format, err := binder.FormatForFile("user.yaml")
//	err = binder.Document(format, data, &req)
//
// # Error Handling
//
//   - ErrMissingContentType, ErrUnsupportedMediaType: wrong or absent Content-Type (415)
//   - ErrBodyTooLarge: body above the configured limit (413)
//   - ErrFailedToParseJSON: malformed JSON, unknown fields or trailing data (400)
//   - ErrFailedToParseDoc, ErrUnknownFormat: document decoding failures
package binder
