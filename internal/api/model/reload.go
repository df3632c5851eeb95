// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	// ReloadMessageName is the fully qualified name the engine uses for the reload request.
	ReloadMessageName = "dmResourceDDF.Reload"

	// DefaultResource is reloaded when the caller does not name any resource.
	DefaultResource = "/def-3652/def-3652.collectionc"

	resourcesFieldNumber protoreflect.FieldNumber = 1
)

// Reload asks the engine to invalidate and reload the named compiled resources.
// Resources keep their order on the wire.
type Reload struct {
	Resources []string `json:"resources" yaml:"resources"`
}

// reloadDescriptor mirrors resource_ddf.proto as shipped with the engine:
//
//	package dmResourceDDF;
//	message Reload { repeated string resources = 1; }
var reloadDescriptor = sync.OnceValues(func() (protoreflect.MessageDescriptor, error) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("resource/resource_ddf.proto"),
		Package: proto.String("dmResourceDDF"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Reload"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     proto.String("resources"),
						JsonName: proto.String("resources"),
						Number:   proto.Int32(int32(resourcesFieldNumber)),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					},
				},
			},
		},
	}

	fd, err := protodesc.NewFile(file, new(protoregistry.Files))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s descriptor: %w", ReloadMessageName, err)
	}

	md := fd.Messages().ByName("Reload")
	if md == nil {
		return nil, fmt.Errorf("descriptor for %s not found", ReloadMessageName)
	}

	return md, nil
})

func (r *Reload) message() (*dynamicpb.Message, error) {
	md, err := reloadDescriptor()
	if err != nil {
		return nil, err
	}

	msg := dynamicpb.NewMessage(md)
	if len(r.Resources) == 0 {
		return msg, nil
	}

	list := msg.Mutable(md.Fields().ByNumber(resourcesFieldNumber)).List()
	for _, resource := range r.Resources {
		list.Append(protoreflect.ValueOfString(resource))
	}

	return msg, nil
}

// Marshal encodes the request in the binary protobuf format the engine expects
// as the POST body. An empty request encodes to an empty body.
func (r *Reload) Marshal() ([]byte, error) {
	msg, err := r.message()
	if err != nil {
		return nil, err
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", ReloadMessageName, err)
	}

	return data, nil
}

// JSON renders the request in its canonical protobuf JSON form. The output is
// not byte stable between builds, compare it structurally.
func (r *Reload) JSON() ([]byte, error) {
	msg, err := r.message()
	if err != nil {
		return nil, err
	}

	data, err := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		EmitUnpopulated: true,
	}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s as json: %w", ReloadMessageName, err)
	}

	return data, nil
}

// UnmarshalReload decodes a binary reload request. Payloads carrying fields
// other than resources are rejected.
func UnmarshalReload(data []byte) (*Reload, error) {
	md, err := reloadDescriptor()
	if err != nil {
		return nil, err
	}

	msg := dynamicpb.NewMessage(md)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ReloadMessageName, err)
	}

	if unknown := msg.GetUnknown(); len(unknown) > 0 {
		return nil, fmt.Errorf("failed to decode %s: %d bytes of unknown fields", ReloadMessageName, len(unknown))
	}

	list := msg.Get(md.Fields().ByNumber(resourcesFieldNumber)).List()
	reload := &Reload{Resources: make([]string, 0, list.Len())}
	for i := range list.Len() {
		reload.Resources = append(reload.Resources, list.Get(i).String())
	}

	return reload, nil
}
