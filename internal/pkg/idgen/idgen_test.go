package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUIDGenerator() {
	s.Run("bare uuid parses", func() {
		id := idgen.NewUUID("").Generate()
		_, err := uuid.Parse(id)
		s.NoError(err)
	})

	s.Run("prefixed uuid", func() {
		id := idgen.NewUUID("char").Generate()
		s.True(strings.HasPrefix(id, "char_"))
		_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
		s.NoError(err)
	})

	s.Run("ids are unique", func() {
		gen := idgen.NewUUID("")
		s.NotEqual(gen.Generate(), gen.Generate())
	})
}

func (s *IDGenTestSuite) TestPrefixedGenerator() {
	id := idgen.NewPrefixed("gen").Generate()
	parts := strings.Split(id, "_")
	s.Require().Len(parts, 3)
	s.Equal("gen", parts[0])
	s.Len(parts[2], 8)
}

func (s *IDGenTestSuite) TestSequentialGenerator() {
	gen := idgen.NewSequential("snap")
	s.Equal("snap_1", gen.Generate())
	s.Equal("snap_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Equal("1", bare.Generate())
}
