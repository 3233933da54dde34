package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// fakeGateway implements Gateway for unit tests. Responses are scripted per
// path: an entry in errors wins, otherwise the JSON body in responses is
// decoded into out.
type gatewayCall struct {
	method string
	path   string
	form   url.Values
	in     any
}

type fakeGateway struct {
	responses map[string]string
	errors    map[string]error
	calls     []gatewayCall
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		responses: map[string]string{},
		errors:    map[string]error{},
	}
}

func (f *fakeGateway) respond(path string, out any) error {
	if err, ok := f.errors[path]; ok {
		return err
	}
	if body, ok := f.responses[path]; ok && out != nil {
		return json.Unmarshal([]byte(body), out)
	}
	return nil
}

func (f *fakeGateway) GetJSON(ctx context.Context, path string, out any) error {
	f.calls = append(f.calls, gatewayCall{method: "GET", path: path})
	return f.respond(path, out)
}

func (f *fakeGateway) PostJSON(ctx context.Context, path string, in, out any) error {
	f.calls = append(f.calls, gatewayCall{method: "POST", path: path, in: in})
	return f.respond(path, out)
}

func (f *fakeGateway) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	f.calls = append(f.calls, gatewayCall{method: "POST", path: path, form: form})
	return f.respond(path, out)
}

func (f *fakeGateway) callsTo(path string) int {
	n := 0
	for _, c := range f.calls {
		if c.path == path {
			n++
		}
	}
	return n
}
