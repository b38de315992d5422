package endpoint

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/streadway/amqp"
)

//Endpoint describes an external system reachable through a connector uri
type Endpoint struct {
	URI    string
	Scheme string
	//Target is what follows the scheme, without the query string
	Target string
	Params map[string]string
}

//Parse builds an Endpoint from a connector uri such as "jms:queue:orders?concurrent=3" or "amqp://user@host/vhost"
func Parse(uri string) (*Endpoint, error) {
	uri = strings.TrimSpace(uri)
	idx := strings.Index(uri, ":")
	if idx <= 0 {
		return nil, fmt.Errorf("endpoint uri %q has no scheme", uri)
	}
	scheme := strings.ToLower(uri[:idx])
	rest := strings.TrimPrefix(uri[idx+1:], "//")

	target, query := rest, ""
	if q := strings.Index(rest, "?"); q >= 0 {
		target, query = rest[:q], rest[q+1:]
	}
	if target == "" {
		return nil, fmt.Errorf("endpoint uri %q has no target", uri)
	}

	params, err := parseParams(query)
	if err != nil {
		return nil, fmt.Errorf("endpoint uri %q has malformed parameters: %w", uri, err)
	}

	if scheme == "amqp" || scheme == "amqps" {
		if _, err := amqp.ParseURI(uri); err != nil {
			return nil, fmt.Errorf("endpoint uri %q is not a valid amqp uri: %w", uri, err)
		}
	}

	return &Endpoint{
		URI:    uri,
		Scheme: scheme,
		Target: target,
		Params: params}, nil
}

func parseParams(query string) (map[string]string, error) {
	params := make(map[string]string)
	if query == "" {
		return params, nil
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		params[k] = v[len(v)-1]
	}
	return params, nil
}
