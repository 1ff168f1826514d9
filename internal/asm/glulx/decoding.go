package glulx

import (
	"encoding/binary"
	"math"
)

// DecodeNodeKind identifies the variant of a DecodeNode.
type DecodeNodeKind uint8

const (
	NodeBranch DecodeNodeKind = iota
	NodeStringTerminator
	NodeByte
	NodeByteString
	NodeUnicodeChar
	NodeUnicodeString
	NodeIndirectRef
	NodeDoubleIndirectRef
	NodeIndirectRefWithArgs
	NodeDoubleIndirectRefWithArgs
)

// nodeTypes maps each kind to the type byte Glulx reads.
var nodeTypes = [...]byte{
	NodeBranch:                    0x00,
	NodeStringTerminator:          0x01,
	NodeByte:                      0x02,
	NodeByteString:                0x03,
	NodeUnicodeChar:               0x04,
	NodeUnicodeString:             0x05,
	NodeIndirectRef:               0x08,
	NodeDoubleIndirectRef:         0x09,
	NodeIndirectRefWithArgs:       0x0a,
	NodeDoubleIndirectRefWithArgs: 0x0b,
}

// DecodeArg is an argument passed to a function invoked from a decoding table:
// either a literal or the absolute address of a label.
type DecodeArg struct {
	Label   Label
	Literal int32
}

// DecodeNode is a node of a compressed-string decoding tree.
type DecodeNode struct {
	Kind        DecodeNodeKind
	Left, Right *DecodeNode
	Byte        byte
	Bytes       ByteString
	Char        rune
	Unicode     Utf32String
	Ref         Label
	RefOffset   int32
	Args        []DecodeArg
}

// len is the serialized length of the subtree rooted at n.
func (n *DecodeNode) len() int {
	switch n.Kind {
	case NodeBranch:
		return 9 + n.Left.len() + n.Right.len()
	case NodeStringTerminator:
		return 1
	case NodeByte:
		return 2
	case NodeByteString:
		return len(n.Bytes) + 2
	case NodeUnicodeChar:
		return 5
	case NodeUnicodeString:
		return n.Unicode.byteLen() + 5
	case NodeIndirectRef, NodeDoubleIndirectRef:
		return 5
	default:
		return 9 + 4*len(n.Args)
	}
}

func (n *DecodeNode) countNodes() int {
	if n.Kind == NodeBranch {
		return 1 + n.Left.countNodes() + n.Right.countNodes()
	}
	return 1
}

// appendTo serializes the subtree in preorder. pos is the absolute address at
// which n begins; branch nodes point at their children by absolute address.
func (n *DecodeNode) appendTo(buf []byte, pos uint32, r Resolver) ([]byte, error) {
	buf = append(buf, nodeTypes[n.Kind])
	switch n.Kind {
	case NodeBranch:
		leftLen := uint64(n.Left.len())
		if uint64(pos)+9+leftLen > math.MaxUint32 {
			return nil, overflowError()
		}
		left := pos + 9
		right := left + uint32(leftLen)
		buf = binary.BigEndian.AppendUint32(buf, left)
		buf = binary.BigEndian.AppendUint32(buf, right)
		var err error
		if buf, err = n.Left.appendTo(buf, left, r); err != nil {
			return nil, err
		}
		return n.Right.appendTo(buf, right, r)
	case NodeStringTerminator:
	case NodeByte:
		buf = append(buf, n.Byte)
	case NodeByteString:
		buf = append(buf, n.Bytes...)
		buf = append(buf, 0)
	case NodeUnicodeChar:
		buf = binary.BigEndian.AppendUint32(buf, uint32(n.Char))
	case NodeUnicodeString:
		buf = n.Unicode.appendTo(buf)
		buf = binary.BigEndian.AppendUint32(buf, 0)
	default:
		addr, err := r.ResolveAbsolute(n.Ref, n.RefOffset)
		if err != nil {
			return nil, err
		}
		buf = binary.BigEndian.AppendUint32(buf, addr)
		if n.Kind == NodeIndirectRefWithArgs || n.Kind == NodeDoubleIndirectRefWithArgs {
			if uint64(len(n.Args)) > math.MaxUint32 {
				return nil, overflowError()
			}
			buf = binary.BigEndian.AppendUint32(buf, uint32(len(n.Args)))
			for _, a := range n.Args {
				v := uint32(a.Literal)
				if !a.Label.IsZero() {
					if v, err = r.ResolveAbsolute(a.Label, a.Literal); err != nil {
						return nil, err
					}
				}
				buf = binary.BigEndian.AppendUint32(buf, v)
			}
		}
	}
	return buf, nil
}
