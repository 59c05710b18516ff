// Package proto holds the agent sidecar wire definition. The generated
// Go sources are produced by go generate and are not checked in.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
