package overlay

// Shader sources for the cube overlay. GLSL 4.1 core matches the context
// the window package requests.

const cubeVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 uMVP;

out vec2 vUV;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vUV = aUV;
}
`

const cubeFragmentShader = `
#version 410 core

in vec2 vUV;

uniform sampler2D uTexture;
uniform vec4 uTint;

out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vUV) * uTint;
}
`
