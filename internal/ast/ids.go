package ast

type (
	// main entities
	FileID   uint32
	DeclID   uint32
	MemberID uint32
	ExprID   uint32
	// sub-entities
	PayloadID uint32
	AttrID    uint32
)

const (
	NoFileID    FileID    = 0
	NoDeclID    DeclID    = 0
	NoMemberID  MemberID  = 0
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
	NoAttrID    AttrID    = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id MemberID) IsValid() bool  { return id != NoMemberID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id AttrID) IsValid() bool    { return id != NoAttrID }
