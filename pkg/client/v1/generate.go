package v1

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,client -package v1 -o v1.gen.go ../../../api/openapi.yml
//go:generate go run go.uber.org/mock/mockgen -source=v1.gen.go -destination=mock_client.go -package=v1 ClientWithResponsesInterface
