package prompts

import "fmt"

// Phases are generated in this order; each one builds on the files of the previous.
var Phases = []string{"Phase 1", "Phase 2", "Phase 3"}

// CodeGeneration asks for the JSON code structure of one phase.
func CodeGeneration(functionalRequirements, technicalRequirements, phase string) string {
	prompt := `
You are the world's best software developer, proficient in React development and backend in Node.js, tasked with creating the code implementation for a project based on its functional and technical requirements documents.

Functional Requirements:
%s

Technical Requirements:
%s

Current Phase: %s

Respond with a single JSON object in the following format:

` + "```json" + `
{
    "folders": ["backend/src/db"],
    "files": {"backend/package.json": "..."},
    "commands": ["npm init -y"]
}
` + "```" + `

"folders" lists folders to create, "files" maps file paths to their complete contents, and "commands" lists setup commands to run. All paths are relative to the project root. Commands run from the project root before folders and files are created.

Phase-Specific Instructions:

Phase 1 - Database Setup:
- Create backend folder structure
- Generate database configuration files and table schemas
- Include dummy data insertion
- Export database utility functions

Phase 2 - Backend API:
- Create API routes and controllers
- Implement business logic and error handling
- Configure CORS
- Integrate with database functions

Phase 3 - Frontend:
- Set up React application with components, pages and routing
- Add state management
- Style with Material UI
- Integrate with backend APIs

Implementation Guidelines:
- Write clean, modular code with proper error handling
- Follow RESTful API patterns
- No authentication/authorization and no user-specific features

Only include the JSON object, no extra explanation. Your output will be parsed and saved as project files.
`
	return fmt.Sprintf(prompt, functionalRequirements, technicalRequirements, phase)
}
