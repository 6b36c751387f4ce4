package ast

// Visitor dispatches on the concrete node type through Accept. Embed
// BaseVisitor to implement only the methods a pass cares about.
type Visitor interface {
	// ====== Source units ======
	VisitSourceUnit(node *SourceUnit) interface{}
	VisitIdent(node *Ident) interface{}
	VisitIdentPath(node *IdentPath) interface{}
	VisitParam(node *Param) interface{}
	VisitParamList(node *ParamList) interface{}
	VisitOverrideSpecifier(node *OverrideSpecifier) interface{}
	VisitCallArgs(node *CallArgs) interface{}
	VisitNamedArg(node *NamedArg) interface{}
	VisitModifierInvocation(node *ModifierInvocation) interface{}

	// ====== Items ======
	VisitPragma(node *PragmaDirective) interface{}
	VisitImport(node *ImportDirective) interface{}
	VisitImportAlias(node *ImportAlias) interface{}
	VisitUsing(node *UsingDirective) interface{}
	VisitUsingItem(node *UsingItem) interface{}
	VisitContract(node *ContractDef) interface{}
	VisitInheritanceSpecifier(node *InheritanceSpecifier) interface{}
	VisitFunction(node *FunctionDef) interface{}
	VisitStateVar(node *StateVarDecl) interface{}
	VisitStruct(node *StructDef) interface{}
	VisitStructField(node *StructField) interface{}
	VisitEnum(node *EnumDef) interface{}
	VisitEvent(node *EventDef) interface{}
	VisitError(node *ErrorDef) interface{}
	VisitUDVT(node *UDVTDef) interface{}
	VisitBadItem(node *BadItem) interface{}

	// ====== Statements ======
	VisitBlock(node *Block) interface{}
	VisitUnchecked(node *UncheckedBlock) interface{}
	VisitVarDecl(node *VarDecl) interface{}
	VisitVarDeclStmt(node *VarDeclStmt) interface{}
	VisitExprStmt(node *ExprStmt) interface{}
	VisitPlaceholder(node *PlaceholderStmt) interface{}
	VisitIf(node *IfStmt) interface{}
	VisitFor(node *ForStmt) interface{}
	VisitWhile(node *WhileStmt) interface{}
	VisitDoWhile(node *DoWhileStmt) interface{}
	VisitContinue(node *ContinueStmt) interface{}
	VisitBreak(node *BreakStmt) interface{}
	VisitReturn(node *ReturnStmt) interface{}
	VisitEmit(node *EmitStmt) interface{}
	VisitRevert(node *RevertStmt) interface{}
	VisitTry(node *TryStmt) interface{}
	VisitCatch(node *CatchClause) interface{}
	VisitAssembly(node *AssemblyStmt) interface{}
	VisitBadStmt(node *BadStmt) interface{}

	// ====== Expressions ======
	VisitLiteral(node *Literal) interface{}
	VisitBinary(node *BinaryExpr) interface{}
	VisitUnary(node *UnaryExpr) interface{}
	VisitAssign(node *AssignExpr) interface{}
	VisitTernary(node *TernaryExpr) interface{}
	VisitCall(node *CallExpr) interface{}
	VisitCallOptions(node *CallOptionsExpr) interface{}
	VisitMember(node *MemberExpr) interface{}
	VisitIndex(node *IndexExpr) interface{}
	VisitSlice(node *SliceExpr) interface{}
	VisitNew(node *NewExpr) interface{}
	VisitTypeExpr(node *TypeExpr) interface{}
	VisitElementaryTypeExpr(node *ElementaryTypeExpr) interface{}
	VisitTuple(node *TupleExpr) interface{}
	VisitBadExpr(node *BadExpr) interface{}

	// ====== Types ======
	VisitElementaryType(node *ElementaryType) interface{}
	VisitNamedType(node *NamedType) interface{}
	VisitMappingType(node *MappingType) interface{}
	VisitArrayType(node *ArrayType) interface{}
	VisitFunctionType(node *FunctionType) interface{}
	VisitBadType(node *BadType) interface{}

	// ====== Yul ======
	VisitYulBlock(node *YulBlock) interface{}
	VisitYulFunction(node *YulFunctionDef) interface{}
	VisitYulVarDecl(node *YulVarDecl) interface{}
	VisitYulAssign(node *YulAssign) interface{}
	VisitYulIf(node *YulIf) interface{}
	VisitYulSwitch(node *YulSwitch) interface{}
	VisitYulSwitchCase(node *YulSwitchCase) interface{}
	VisitYulFor(node *YulFor) interface{}
	VisitYulBreak(node *YulBreak) interface{}
	VisitYulContinue(node *YulContinue) interface{}
	VisitYulLeave(node *YulLeave) interface{}
	VisitYulExprStmt(node *YulExprStmt) interface{}
	VisitYulCall(node *YulCall) interface{}
	VisitYulPath(node *YulPath) interface{}
	VisitYulLit(node *YulLit) interface{}
}

// BaseVisitor provides default no-op implementations of all Visitor
// methods
type BaseVisitor struct{}

func (v *BaseVisitor) VisitSourceUnit(node *SourceUnit) interface{}                     { return nil }
func (v *BaseVisitor) VisitIdent(node *Ident) interface{}                               { return nil }
func (v *BaseVisitor) VisitIdentPath(node *IdentPath) interface{}                       { return nil }
func (v *BaseVisitor) VisitParam(node *Param) interface{}                               { return nil }
func (v *BaseVisitor) VisitParamList(node *ParamList) interface{}                       { return nil }
func (v *BaseVisitor) VisitOverrideSpecifier(node *OverrideSpecifier) interface{}       { return nil }
func (v *BaseVisitor) VisitCallArgs(node *CallArgs) interface{}                         { return nil }
func (v *BaseVisitor) VisitNamedArg(node *NamedArg) interface{}                         { return nil }
func (v *BaseVisitor) VisitModifierInvocation(node *ModifierInvocation) interface{}     { return nil }
func (v *BaseVisitor) VisitPragma(node *PragmaDirective) interface{}                    { return nil }
func (v *BaseVisitor) VisitImport(node *ImportDirective) interface{}                    { return nil }
func (v *BaseVisitor) VisitImportAlias(node *ImportAlias) interface{}                   { return nil }
func (v *BaseVisitor) VisitUsing(node *UsingDirective) interface{}                      { return nil }
func (v *BaseVisitor) VisitUsingItem(node *UsingItem) interface{}                       { return nil }
func (v *BaseVisitor) VisitContract(node *ContractDef) interface{}                      { return nil }
func (v *BaseVisitor) VisitInheritanceSpecifier(node *InheritanceSpecifier) interface{} { return nil }
func (v *BaseVisitor) VisitFunction(node *FunctionDef) interface{}                      { return nil }
func (v *BaseVisitor) VisitStateVar(node *StateVarDecl) interface{}                     { return nil }
func (v *BaseVisitor) VisitStruct(node *StructDef) interface{}                          { return nil }
func (v *BaseVisitor) VisitStructField(node *StructField) interface{}                   { return nil }
func (v *BaseVisitor) VisitEnum(node *EnumDef) interface{}                              { return nil }
func (v *BaseVisitor) VisitEvent(node *EventDef) interface{}                            { return nil }
func (v *BaseVisitor) VisitError(node *ErrorDef) interface{}                            { return nil }
func (v *BaseVisitor) VisitUDVT(node *UDVTDef) interface{}                              { return nil }
func (v *BaseVisitor) VisitBadItem(node *BadItem) interface{}                           { return nil }
func (v *BaseVisitor) VisitBlock(node *Block) interface{}                               { return nil }
func (v *BaseVisitor) VisitUnchecked(node *UncheckedBlock) interface{}                  { return nil }
func (v *BaseVisitor) VisitVarDecl(node *VarDecl) interface{}                           { return nil }
func (v *BaseVisitor) VisitVarDeclStmt(node *VarDeclStmt) interface{}                   { return nil }
func (v *BaseVisitor) VisitExprStmt(node *ExprStmt) interface{}                         { return nil }
func (v *BaseVisitor) VisitPlaceholder(node *PlaceholderStmt) interface{}               { return nil }
func (v *BaseVisitor) VisitIf(node *IfStmt) interface{}                                 { return nil }
func (v *BaseVisitor) VisitFor(node *ForStmt) interface{}                               { return nil }
func (v *BaseVisitor) VisitWhile(node *WhileStmt) interface{}                           { return nil }
func (v *BaseVisitor) VisitDoWhile(node *DoWhileStmt) interface{}                       { return nil }
func (v *BaseVisitor) VisitContinue(node *ContinueStmt) interface{}                     { return nil }
func (v *BaseVisitor) VisitBreak(node *BreakStmt) interface{}                           { return nil }
func (v *BaseVisitor) VisitReturn(node *ReturnStmt) interface{}                         { return nil }
func (v *BaseVisitor) VisitEmit(node *EmitStmt) interface{}                             { return nil }
func (v *BaseVisitor) VisitRevert(node *RevertStmt) interface{}                         { return nil }
func (v *BaseVisitor) VisitTry(node *TryStmt) interface{}                               { return nil }
func (v *BaseVisitor) VisitCatch(node *CatchClause) interface{}                         { return nil }
func (v *BaseVisitor) VisitAssembly(node *AssemblyStmt) interface{}                     { return nil }
func (v *BaseVisitor) VisitBadStmt(node *BadStmt) interface{}                           { return nil }
func (v *BaseVisitor) VisitLiteral(node *Literal) interface{}                           { return nil }
func (v *BaseVisitor) VisitBinary(node *BinaryExpr) interface{}                         { return nil }
func (v *BaseVisitor) VisitUnary(node *UnaryExpr) interface{}                           { return nil }
func (v *BaseVisitor) VisitAssign(node *AssignExpr) interface{}                         { return nil }
func (v *BaseVisitor) VisitTernary(node *TernaryExpr) interface{}                       { return nil }
func (v *BaseVisitor) VisitCall(node *CallExpr) interface{}                             { return nil }
func (v *BaseVisitor) VisitCallOptions(node *CallOptionsExpr) interface{}               { return nil }
func (v *BaseVisitor) VisitMember(node *MemberExpr) interface{}                         { return nil }
func (v *BaseVisitor) VisitIndex(node *IndexExpr) interface{}                           { return nil }
func (v *BaseVisitor) VisitSlice(node *SliceExpr) interface{}                           { return nil }
func (v *BaseVisitor) VisitNew(node *NewExpr) interface{}                               { return nil }
func (v *BaseVisitor) VisitTypeExpr(node *TypeExpr) interface{}                         { return nil }
func (v *BaseVisitor) VisitElementaryTypeExpr(node *ElementaryTypeExpr) interface{}     { return nil }
func (v *BaseVisitor) VisitTuple(node *TupleExpr) interface{}                           { return nil }
func (v *BaseVisitor) VisitBadExpr(node *BadExpr) interface{}                           { return nil }
func (v *BaseVisitor) VisitElementaryType(node *ElementaryType) interface{}             { return nil }
func (v *BaseVisitor) VisitNamedType(node *NamedType) interface{}                       { return nil }
func (v *BaseVisitor) VisitMappingType(node *MappingType) interface{}                   { return nil }
func (v *BaseVisitor) VisitArrayType(node *ArrayType) interface{}                       { return nil }
func (v *BaseVisitor) VisitFunctionType(node *FunctionType) interface{}                 { return nil }
func (v *BaseVisitor) VisitBadType(node *BadType) interface{}                           { return nil }
func (v *BaseVisitor) VisitYulBlock(node *YulBlock) interface{}                         { return nil }
func (v *BaseVisitor) VisitYulFunction(node *YulFunctionDef) interface{}                { return nil }
func (v *BaseVisitor) VisitYulVarDecl(node *YulVarDecl) interface{}                     { return nil }
func (v *BaseVisitor) VisitYulAssign(node *YulAssign) interface{}                       { return nil }
func (v *BaseVisitor) VisitYulIf(node *YulIf) interface{}                               { return nil }
func (v *BaseVisitor) VisitYulSwitch(node *YulSwitch) interface{}                       { return nil }
func (v *BaseVisitor) VisitYulSwitchCase(node *YulSwitchCase) interface{}               { return nil }
func (v *BaseVisitor) VisitYulFor(node *YulFor) interface{}                             { return nil }
func (v *BaseVisitor) VisitYulBreak(node *YulBreak) interface{}                         { return nil }
func (v *BaseVisitor) VisitYulContinue(node *YulContinue) interface{}                   { return nil }
func (v *BaseVisitor) VisitYulLeave(node *YulLeave) interface{}                         { return nil }
func (v *BaseVisitor) VisitYulExprStmt(node *YulExprStmt) interface{}                   { return nil }
func (v *BaseVisitor) VisitYulCall(node *YulCall) interface{}                           { return nil }
func (v *BaseVisitor) VisitYulPath(node *YulPath) interface{}                           { return nil }
func (v *BaseVisitor) VisitYulLit(node *YulLit) interface{}                             { return nil }

// Walk traverses the tree rooted at node in depth-first source order,
// dispatching each node through v
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	node.Accept(v)
	eachChild(node, func(child Node) { Walk(v, child) })
}

// Inspect traverses the tree rooted at node, calling f on each node.
// If f returns false the node's children are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil {
		return
	}
	if !f(node) {
		return
	}
	eachChild(node, func(child Node) { Inspect(child, f) })
}

// eachChild invokes f on every non-nil direct child of node, in
// source order. Tuple holes and omitted optional children are skipped.
func eachChild(node Node, f func(Node)) {
	switch n := node.(type) {
	case *SourceUnit:
		for _, item := range n.Items {
			f(item)
		}
	case *IdentPath:
		for _, part := range n.Parts {
			f(part)
		}
	case *Param:
		if n.Type != nil {
			f(n.Type)
		}
		if n.Name != nil {
			f(n.Name)
		}
	case *ParamList:
		for _, p := range n.Params {
			f(p)
		}
	case *OverrideSpecifier:
		for _, path := range n.Paths {
			f(path)
		}
	case *CallArgs:
		for _, arg := range n.Positional {
			f(arg)
		}
		for _, arg := range n.Named {
			f(arg)
		}
	case *NamedArg:
		f(n.Name)
		f(n.Value)
	case *ModifierInvocation:
		f(n.Path)
		if n.Args != nil {
			f(n.Args)
		}

	case *PragmaDirective:
		f(n.Key)
	case *ImportDirective:
		if n.Alias != nil {
			f(n.Alias)
		}
		for _, sym := range n.Symbols {
			f(sym)
		}
	case *ImportAlias:
		f(n.Name)
		if n.Alias != nil {
			f(n.Alias)
		}
	case *UsingDirective:
		if n.Lib != nil {
			f(n.Lib)
		}
		for _, item := range n.Items {
			f(item)
		}
		if n.Target != nil {
			f(n.Target)
		}
	case *UsingItem:
		f(n.Path)
	case *ContractDef:
		f(n.Name)
		for _, base := range n.Bases {
			f(base)
		}
		for _, item := range n.Items {
			f(item)
		}
	case *InheritanceSpecifier:
		f(n.Path)
		if n.Args != nil {
			f(n.Args)
		}
	case *FunctionDef:
		if n.Name != nil {
			f(n.Name)
		}
		if n.Params != nil {
			f(n.Params)
		}
		for _, mod := range n.Modifiers {
			f(mod)
		}
		if n.Override != nil {
			f(n.Override)
		}
		if n.Returns != nil {
			f(n.Returns)
		}
		if n.Body != nil {
			f(n.Body)
		}
	case *StateVarDecl:
		f(n.Type)
		if n.Override != nil {
			f(n.Override)
		}
		f(n.Name)
		if n.Value != nil {
			f(n.Value)
		}
	case *StructDef:
		f(n.Name)
		for _, field := range n.Fields {
			f(field)
		}
	case *StructField:
		f(n.Type)
		f(n.Name)
	case *EnumDef:
		f(n.Name)
		for _, variant := range n.Variants {
			f(variant)
		}
	case *EventDef:
		f(n.Name)
		if n.Params != nil {
			f(n.Params)
		}
	case *ErrorDef:
		f(n.Name)
		if n.Params != nil {
			f(n.Params)
		}
	case *UDVTDef:
		f(n.Name)
		f(n.Underlying)

	case *Block:
		for _, stmt := range n.Stmts {
			f(stmt)
		}
	case *UncheckedBlock:
		f(n.Body)
	case *VarDecl:
		f(n.Type)
		if n.Name != nil {
			f(n.Name)
		}
	case *VarDeclStmt:
		for _, decl := range n.Decls {
			if decl != nil {
				f(decl)
			}
		}
		if n.Value != nil {
			f(n.Value)
		}
	case *ExprStmt:
		f(n.X)
	case *IfStmt:
		f(n.Cond)
		f(n.Then)
		if n.Else != nil {
			f(n.Else)
		}
	case *ForStmt:
		if n.Init != nil {
			f(n.Init)
		}
		if n.Cond != nil {
			f(n.Cond)
		}
		if n.Post != nil {
			f(n.Post)
		}
		f(n.Body)
	case *WhileStmt:
		f(n.Cond)
		f(n.Body)
	case *DoWhileStmt:
		f(n.Body)
		f(n.Cond)
	case *ReturnStmt:
		if n.Value != nil {
			f(n.Value)
		}
	case *EmitStmt:
		f(n.Call)
	case *RevertStmt:
		f(n.Call)
	case *TryStmt:
		f(n.Call)
		if n.Returns != nil {
			f(n.Returns)
		}
		f(n.Body)
		for _, clause := range n.Catches {
			f(clause)
		}
	case *CatchClause:
		if n.Name != nil {
			f(n.Name)
		}
		if n.Params != nil {
			f(n.Params)
		}
		f(n.Body)
	case *AssemblyStmt:
		f(n.Body)

	case *BinaryExpr:
		f(n.X)
		f(n.Y)
	case *UnaryExpr:
		f(n.X)
	case *AssignExpr:
		f(n.X)
		f(n.Y)
	case *TernaryExpr:
		f(n.Cond)
		f(n.Then)
		f(n.Else)
	case *CallExpr:
		f(n.Callee)
		f(n.Args)
	case *CallOptionsExpr:
		f(n.X)
		for _, opt := range n.Opts {
			f(opt)
		}
	case *MemberExpr:
		f(n.X)
		f(n.Member)
	case *IndexExpr:
		f(n.X)
		if n.Index != nil {
			f(n.Index)
		}
	case *SliceExpr:
		f(n.X)
		if n.Start != nil {
			f(n.Start)
		}
		if n.End != nil {
			f(n.End)
		}
	case *NewExpr:
		f(n.Type)
	case *TypeExpr:
		f(n.Type)
	case *ElementaryTypeExpr:
		f(n.Type)
	case *TupleExpr:
		for _, elem := range n.Elems {
			if elem != nil {
				f(elem)
			}
		}

	case *NamedType:
		f(n.Path)
	case *MappingType:
		f(n.Key)
		if n.KeyName != nil {
			f(n.KeyName)
		}
		f(n.Value)
		if n.ValueName != nil {
			f(n.ValueName)
		}
	case *ArrayType:
		f(n.Elem)
		if n.Len != nil {
			f(n.Len)
		}
	case *FunctionType:
		if n.Params != nil {
			f(n.Params)
		}
		if n.Returns != nil {
			f(n.Returns)
		}

	case *YulBlock:
		for _, stmt := range n.Stmts {
			f(stmt)
		}
	case *YulFunctionDef:
		f(n.Name)
		for _, p := range n.Params {
			f(p)
		}
		for _, r := range n.Returns {
			f(r)
		}
		f(n.Body)
	case *YulVarDecl:
		for _, name := range n.Names {
			f(name)
		}
		if n.Value != nil {
			f(n.Value)
		}
	case *YulAssign:
		for _, target := range n.Targets {
			f(target)
		}
		f(n.Value)
	case *YulIf:
		f(n.Cond)
		f(n.Body)
	case *YulSwitch:
		f(n.Expr)
		for _, c := range n.Cases {
			f(c)
		}
	case *YulSwitchCase:
		if n.Value != nil {
			f(n.Value)
		}
		f(n.Body)
	case *YulFor:
		f(n.Init)
		if n.Cond != nil {
			f(n.Cond)
		}
		f(n.Post)
		f(n.Body)
	case *YulExprStmt:
		f(n.X)
	case *YulCall:
		f(n.Name)
		for _, arg := range n.Args {
			f(arg)
		}
	case *YulPath:
		for _, part := range n.Parts {
			f(part)
		}
	}
}
