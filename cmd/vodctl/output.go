package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wangjian/alivod/vod"
)

type output struct {
	RequestID string            `json:"RequestId"`
	Payload   interface{}       `json:"Payload,omitempty"`
	Decoded   interface{}       `json:"Decoded,omitempty"`
	Error     *vod.ServiceError `json:"Error,omitempty"`
}

func newOutput[T any](result *vod.Result[T]) *output {
	o := &output{RequestID: result.RequestID}
	if result.OK() {
		o.Payload = result.Payload
	} else {
		o.Error = result.Error
	}
	return o
}

// print 输出一个或多个结果，任一结果为服务端错误时退出码为 exitServiceError
func (a *app) print(outputs ...*output) error {
	for _, o := range outputs {
		if o.Error != nil {
			a.exitCode = exitServiceError
		}
	}
	var v interface{} = outputs
	if len(outputs) == 1 {
		v = outputs[0]
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	if a.Options.Output == "yaml" {
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
	} else {
		data = append(data, '\n')
	}
	_, err = a.stdout.Write(data)
	return err
}

// jsonToYAML 保留 JSON 的字段名与字段顺序，以 block 风格输出
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "convert output to yaml")
	}
	resetStyle(&node)
	return yaml.Marshal(&node)
}

func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
