package vect

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (v Vect) MarshalYAML() (interface{}, error) {
	return []Float{v.X, v.Y}, nil
}

//accepts both the sequence form [x, y] and the mapping form {x: 1, y: 2}.
func (v *Vect) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []Float
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("vect: line %d: want 2 components, got %d", value.Line, len(xy))
		}
		v.X, v.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var xy struct {
			X Float `yaml:"x"`
			Y Float `yaml:"y"`
		}
		if err := value.Decode(&xy); err != nil {
			return err
		}
		v.X, v.Y = xy.X, xy.Y
		return nil
	default:
		return fmt.Errorf("vect: line %d: cannot decode %v into a vector", value.Line, value.Tag)
	}
}
